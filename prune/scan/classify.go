// Package scan implements empty-page detection over the body elements of
// a DOCX content document. Detection is heuristic: Word files carry no
// rendered page boundaries, so a "page" is inferred from paragraph and
// break markers.
package scan

import (
	"strings"

	"github.com/beevik/etree"
)

// pageForcingTypes lists the section break types that start a new page.
// A continuous section break does not.
var pageForcingTypes = map[string]bool{
	"nextPage": true,
	"oddPage":  true,
	"evenPage": true,
}

// IsParagraph reports whether el is a paragraph (w:p) element.
func IsParagraph(el *etree.Element) bool {
	return el.Tag == "p"
}

// ParagraphText returns the visible text of an element: every text run
// (w:t) concatenated in document order, trimmed of surrounding
// whitespace. Drawings, fields and other non-text inline content
// contribute nothing, so a paragraph holding only an image still reads
// as empty. That matches the tool's historical detection behavior and is
// intentional; callers wanting different semantics should not change it
// here.
func ParagraphText(el *etree.Element) string {
	var b strings.Builder
	collectText(el, &b)
	return strings.TrimSpace(b.String())
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.ChildElements() {
		if child.Tag == "t" {
			b.WriteString(child.Text())
			continue
		}
		collectText(child, b)
	}
}

// IsEmptyParagraph reports whether the element contains zero visible text.
func IsEmptyParagraph(el *etree.Element) bool {
	return ParagraphText(el) == ""
}

// HasPageBreak reports whether the element contains an explicit page
// break run (w:br w:type="page").
func HasPageBreak(el *etree.Element) bool {
	found := false
	walk(el, func(d *etree.Element) {
		if d.Tag == "br" && attrValue(d, "type") == "page" {
			found = true
		}
	})
	return found
}

// HasPageForcingSectionBreak reports whether the element carries a
// section break (w:sectPr) whose type forces a new page. A sectPr
// without an explicit w:type child is not counted, matching prior
// releases; continuous breaks never count.
func HasPageForcingSectionBreak(el *etree.Element) bool {
	found := false
	walk(el, func(d *etree.Element) {
		if d.Tag != "sectPr" {
			return
		}
		walk(d, func(inner *etree.Element) {
			if inner.Tag == "type" && pageForcingTypes[attrValue(inner, "val")] {
				found = true
			}
		})
	})
	return found
}

// HasPageForcingBreak reports whether the element ends the current page
// by either break kind.
func HasPageForcingBreak(el *etree.Element) bool {
	return HasPageBreak(el) || HasPageForcingSectionBreak(el)
}

// walk visits every descendant element of el in document order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	for _, child := range el.ChildElements() {
		fn(child)
		walk(child, fn)
	}
}

// attrValue returns the value of the attribute with the given local
// name, ignoring its namespace prefix.
func attrValue(el *etree.Element, key string) string {
	for _, a := range el.Attr {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}
