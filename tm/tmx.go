package tm

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// CorpusError reports a corpus file that could not be read or parsed. It is
// non-fatal to the overall load: the file is skipped with a diagnostic.
type CorpusError struct {
	File  string
	Cause error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus error: %s: %v", e.File, e.Cause)
}

func (e *CorpusError) Unwrap() error {
	return e.Cause
}

// tmxDocument models the subset of TMX we consume: translation units with
// language-tagged segment variants.
type tmxDocument struct {
	XMLName xml.Name `xml:"tmx"`
	Body    struct {
		Units []tmxUnit `xml:"tu"`
	} `xml:"body"`
}

type tmxUnit struct {
	Variants []tmxVariant `xml:"tuv"`
}

type tmxVariant struct {
	XMLLang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Lang    string `xml:"lang,attr"`
	Seg     struct {
		Text string `xml:",chardata"`
	} `xml:"seg"`
}

// lang prefers the standard xml:lang attribute over a plain lang attribute.
func (v tmxVariant) lang() string {
	if v.XMLLang != "" {
		return v.XMLLang
	}
	return v.Lang
}

// ReadTMXDir walks a directory tree for *.tmx files and returns their aligned
// units in file-then-document order (files are visited lexically). A
// malformed file is skipped with a logged diagnostic, never failing the whole
// read; an error is returned only when the directory itself is unreadable.
func ReadTMXDir(dir string) ([]AlignedUnit, error) {
	var units []AlignedUnit

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".tmx") {
			return nil
		}

		fileUnits, err := readTMXFile(path)
		if err != nil {
			log.Printf("tm: skipping corpus file: %v", &CorpusError{File: path, Cause: err})
			return nil
		}
		units = append(units, fileUnits...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

func readTMXFile(path string) ([]AlignedUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc tmxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var units []AlignedUnit
	for _, tu := range doc.Body.Units {
		var unit AlignedUnit
		for _, tuv := range tu.Variants {
			if strings.TrimSpace(tuv.Seg.Text) == "" {
				continue
			}
			unit = append(unit, LangText{
				Lang: strings.ToLower(tuv.lang()),
				Text: tuv.Seg.Text,
			})
		}
		if len(unit) > 0 {
			units = append(units, unit)
		}
	}
	return units, nil
}

// LoadDir reads a TMX corpus directory and loads it into the index, replacing
// any prior content.
func LoadDir(idx Index, dir string) (LoadSummary, error) {
	units, err := ReadTMXDir(dir)
	if err != nil {
		return LoadSummary{}, err
	}
	return idx.Load(units)
}
