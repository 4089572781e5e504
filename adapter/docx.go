package adapter

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"

	"github.com/VerbaLabs/doctrans"
)

// docxDocumentXML is the archive entry holding the document body.
const docxDocumentXML = "word/document.xml"

// wtRunPattern matches one <w:t> text run. The run content is rewritten in
// place on Apply, so everything outside the runs survives byte for byte.
var wtRunPattern = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?>(.*?)</w:t>`)

// DOCXAdapter extracts and applies translations to DOCX documents. A DOCX is
// a zip container; only the word/document.xml entry is touched, and inside it
// only the contents of <w:t> runs.
type DOCXAdapter struct{}

// NewDOCXAdapter creates a new DOCX adapter.
func NewDOCXAdapter() *DOCXAdapter {
	return &DOCXAdapter{}
}

// parsedDOCX holds the original container and the located text runs.
type parsedDOCX struct {
	container []byte
	document  []byte  // raw word/document.xml
	runs      [][]int // (start, end) byte ranges of run contents, in order
}

// Extract opens the container and collects every <w:t> run in document order.
func (a *DOCXAdapter) Extract(content []byte) (any, []TextNode, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, nil, &doctrans.AdapterError{
			Message:     "failed to open container",
			Cause:       err,
			ContentType: "docx",
		}
	}

	document, err := readZipEntry(zr, docxDocumentXML)
	if err != nil {
		return nil, nil, &doctrans.AdapterError{
			Message:     "failed to read " + docxDocumentXML,
			Cause:       err,
			ContentType: "docx",
		}
	}

	matches := wtRunPattern.FindAllSubmatchIndex(document, -1)
	runs := make([][]int, 0, len(matches))
	nodes := make([]TextNode, 0, len(matches))
	for _, m := range matches {
		runs = append(runs, []int{m[2], m[3]})
		nodes = append(nodes, TextNode{
			Text:     unescapeXML(string(document[m[2]:m[3]])),
			NodeType: "docx_run",
		})
	}

	return &parsedDOCX{container: content, document: document, runs: runs}, nodes, nil
}

// Apply rewrites the run contents positionally and repacks the container with
// every other entry untouched. Translations beyond the run count are ignored;
// runs beyond the translation count keep their original text.
func (a *DOCXAdapter) Apply(parsed any, translations []string) ([]byte, error) {
	d, ok := parsed.(*parsedDOCX)
	if !ok {
		return nil, &doctrans.AdapterError{
			Message:     "unexpected parsed document type",
			ContentType: "docx",
		}
	}

	var doc bytes.Buffer
	cursor := 0
	for i, r := range d.runs {
		if i >= len(translations) {
			break
		}
		doc.Write(d.document[cursor:r[0]])
		doc.WriteString(escapeXML(translations[i]))
		cursor = r[1]
	}
	doc.Write(d.document[cursor:])

	return repackZip(d.container, docxDocumentXML, doc.Bytes())
}

// ContentType identifies the document format.
func (a *DOCXAdapter) ContentType() string {
	return "docx"
}

// readZipEntry reads one named entry from a zip archive.
func readZipEntry(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// repackZip copies a zip container, replacing the named entry's contents.
func repackZip(container []byte, name string, replacement []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		header := f.FileHeader
		w, err := zw.CreateHeader(&header)
		if err != nil {
			return nil, err
		}

		if f.Name == name {
			if _, err := w.Write(replacement); err != nil {
				return nil, err
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Verify DOCXAdapter implements Adapter
var _ Adapter = (*DOCXAdapter)(nil)
