package adapter

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

const testDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Hello</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Ben &amp; Jerry</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct{ name, body string }{
		{"[Content_Types].xml", `<Types/>`},
		{"word/document.xml", documentXML},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatalf("building fixture: %v", err)
		}
		if _, err := w.Write([]byte(entry.body)); err != nil {
			t.Fatalf("building fixture: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	return buf.Bytes()
}

func readDOCXEntry(t *testing.T, container []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		t.Fatalf("opening output container: %v", err)
	}
	f, err := zr.Open(name)
	if err != nil {
		t.Fatalf("opening %s: %v", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func TestDOCXAdapter_Extract(t *testing.T) {
	a := NewDOCXAdapter()
	content := buildDOCX(t, testDocumentXML)

	_, nodes, err := a.Extract(content)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(nodes))
	}
	if nodes[0].Text != "Hello" {
		t.Errorf("nodes[0] = %q", nodes[0].Text)
	}
	// Entities are decoded before the text reaches the service.
	if nodes[1].Text != "Ben & Jerry" {
		t.Errorf("nodes[1] = %q", nodes[1].Text)
	}
}

func TestDOCXAdapter_Apply(t *testing.T) {
	a := NewDOCXAdapter()
	content := buildDOCX(t, testDocumentXML)

	parsed, _, err := a.Extract(content)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	out, err := a.Apply(parsed, []string{"Hallo", "Ben < Jerry"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	doc := readDOCXEntry(t, out, "word/document.xml")
	if !strings.Contains(doc, "<w:t>Hallo</w:t>") {
		t.Errorf("first run not rewritten: %s", doc)
	}
	// Translations are escaped on the way back in.
	if !strings.Contains(doc, `<w:t xml:space="preserve">Ben &lt; Jerry</w:t>`) {
		t.Errorf("second run not rewritten: %s", doc)
	}
	// Markup outside the runs survives untouched.
	if !strings.Contains(doc, "<w:body>") || !strings.Contains(doc, "</w:document>") {
		t.Errorf("surrounding markup damaged: %s", doc)
	}
	// Other archive entries survive the repack.
	if got := readDOCXEntry(t, out, "[Content_Types].xml"); got != `<Types/>` {
		t.Errorf("[Content_Types].xml = %q", got)
	}
}

func TestDOCXAdapter_ShortTranslationsKeepTail(t *testing.T) {
	a := NewDOCXAdapter()
	content := buildDOCX(t, testDocumentXML)

	parsed, _, err := a.Extract(content)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	out, err := a.Apply(parsed, []string{"Hallo"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	doc := readDOCXEntry(t, out, "word/document.xml")
	if !strings.Contains(doc, "Ben &amp; Jerry") {
		t.Errorf("untranslated run must keep its original text: %s", doc)
	}
}

func TestDOCXAdapter_NotAZip(t *testing.T) {
	a := NewDOCXAdapter()
	if _, _, err := a.Extract([]byte("plain text, no container")); err == nil {
		t.Error("expected error for non-zip input")
	}
}
