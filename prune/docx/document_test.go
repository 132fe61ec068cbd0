package docx

import (
	"errors"
	"strings"
	"testing"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
`

func wrapBody(body string) []byte {
	return []byte(docHeader +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`)
}

func paraTexts(d *Document) []string {
	var texts []string
	for _, el := range d.BodyElements() {
		if el.Tag != "p" {
			continue
		}
		var b strings.Builder
		for _, r := range el.ChildElements() {
			for _, tEl := range r.ChildElements() {
				if tEl.Tag == "t" {
					b.WriteString(tEl.Text())
				}
			}
		}
		texts = append(texts, b.String())
	}
	return texts
}

func TestParseDocumentMalformed(t *testing.T) {
	_, err := ParseDocument([]byte(`<w:document><w:body>`))
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("expected ErrParseFailure, got %v", err)
	}
}

func TestParseDocumentWrongRoot(t *testing.T) {
	_, err := ParseDocument([]byte(docHeader + `<note><body/></note>`))
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("expected ErrParseFailure for non-document root, got %v", err)
	}
}

func TestParseDocumentNoBody(t *testing.T) {
	src := docHeader + `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`
	_, err := ParseDocument([]byte(src))
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("expected ErrParseFailure for missing body, got %v", err)
	}
}

func TestRemoveElementsPreservesOrder(t *testing.T) {
	body := `<w:p><w:r><w:t>a</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>b</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>c</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>d</w:t></w:r></w:p>`
	d, err := ParseDocument(wrapBody(body))
	if err != nil {
		t.Fatal(err)
	}

	if removed := d.RemoveElements([]int{1, 2}); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	// Rewrite and re-parse: the survivors keep their relative order and
	// the removed elements leave no trace.
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := ParseDocument(out)
	if err != nil {
		t.Fatalf("re-parsing rewritten document: %v", err)
	}
	got := paraTexts(reparsed)
	if len(got) != 2 || got[0] != "a" || got[1] != "d" {
		t.Errorf("paragraphs after removal = %v, want [a d]", got)
	}
}

func TestRemoveElementsIdempotent(t *testing.T) {
	d, err := ParseDocument(wrapBody(`<w:p/><w:p/><w:p/>`))
	if err != nil {
		t.Fatal(err)
	}

	// Duplicates, out-of-order and out-of-range positions are all
	// tolerated; only valid positions count.
	removed := d.RemoveElements([]int{2, 0, 2, -1, 99})
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if n := len(d.BodyElements()); n != 1 {
		t.Errorf("remaining elements = %d, want 1", n)
	}

	// A second pass over the same positions removes nothing further.
	if removed := d.RemoveElements([]int{0}); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if removed := d.RemoveElements([]int{0}); removed != 0 {
		t.Errorf("expected removal on empty body to be a no-op, got %d", removed)
	}
}

func TestSerializeKeepsDeclaration(t *testing.T) {
	d, err := ParseDocument(wrapBody(`<w:p/>`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "<?xml ") {
		t.Errorf("output does not start with an XML declaration: %.40s", out)
	}
	if !strings.Contains(string(out), `encoding="UTF-8"`) {
		t.Error("output declaration lost the UTF-8 encoding")
	}
}

func TestSerializeAddsDeclarationWhenMissing(t *testing.T) {
	src := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p/></w:body></w:document>`
	d, err := ParseDocument([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "<?xml ") {
		t.Errorf("missing declaration was not added: %.40s", out)
	}
}

func TestNamespaceRoundTrip(t *testing.T) {
	// The document declares prefixes its body never references. Word
	// inherits such declarations from the template; they are format
	// metadata and must survive a no-op rewrite.
	src := docHeader +
		`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"` +
		` xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006">` +
		`<w:body><w:p><w:r><w:t>kept</w:t></w:r></w:p></w:body></w:document>`

	d, err := ParseDocument([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	for _, decl := range []string{
		`xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`,
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`,
		`xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml"`,
		`xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"`,
	} {
		if !strings.Contains(string(out), decl) {
			t.Errorf("rewrite dropped namespace declaration %s", decl)
		}
	}

	// Prefixes on elements must survive as written, too.
	if !strings.Contains(string(out), "<w:body>") {
		t.Error("rewrite lost the w: prefix on body")
	}
}

func TestNamespaceRoundTripAfterDeletion(t *testing.T) {
	src := docHeader +
		`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">` +
		`<w:body><w:p/><w:p><w:r><w:t>stay</w:t></w:r></w:p></w:body></w:document>`

	d, err := ParseDocument([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	d.RemoveElements([]int{0})

	out, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"`) {
		t.Error("deletion rewrite dropped an unused namespace declaration")
	}
}
