package docx

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Document is the parsed main content document. The element tree keeps
// namespace prefixes and xmlns declarations exactly as read, so a
// rewrite after deletions round-trips every prefix-to-URI binding from
// the source, including ones nothing references after deletion.
// Serializer state is per-document; nothing here touches process-global
// registries, so rewriting is safe to do more than once per process.
type Document struct {
	doc  *etree.Document
	body *etree.Element
}

// LoadDocument parses the content document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return ParseDocument(data)
}

// ParseDocument parses raw content document markup.
func ParseDocument(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, fmt.Errorf("%w: unexpected root element", ErrParseFailure)
	}

	var body *etree.Element
	for _, child := range root.ChildElements() {
		if child.Tag == "body" {
			body = child
			break
		}
	}
	if body == nil {
		return nil, fmt.Errorf("%w: document has no body", ErrParseFailure)
	}

	return &Document{doc: doc, body: body}, nil
}

// BodyElements returns the body's direct children in reading order.
// Positions in the returned slice are the indices the region scanner and
// RemoveElements operate on.
func (d *Document) BodyElements() []*etree.Element {
	return d.body.ChildElements()
}

// RemoveElements removes the body children at the given positions and
// returns how many were actually detached. All positions are resolved
// against the current child list before anything is removed, so the set
// may arrive in any order and may contain duplicates or overlapping
// regions. A position out of range, or an element already detached, is
// skipped rather than treated as an error.
func (d *Document) RemoveElements(indices []int) int {
	elements := d.body.ChildElements()
	seen := make(map[int]bool, len(indices))

	removed := 0
	for _, i := range indices {
		if i < 0 || i >= len(elements) || seen[i] {
			continue
		}
		seen[i] = true
		if d.body.RemoveChild(elements[i]) != nil {
			removed++
		}
	}
	return removed
}

// Bytes serializes the document, guaranteeing a UTF-8 XML declaration at
// the top even when the source omitted one.
func (d *Document) Bytes() ([]byte, error) {
	d.ensureDeclaration()
	b, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return b, nil
}

// Save writes the serialized document to path.
func (d *Document) Save(path string) error {
	b, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// ensureDeclaration adds an XML declaration when the source had none.
// Word always writes one, so this only fires on hand-built fixtures.
func (d *Document) ensureDeclaration() {
	for _, child := range d.doc.Child {
		if pi, ok := child.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	pi := d.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	d.doc.RemoveChild(pi)
	d.doc.InsertChildAt(0, pi)
}
