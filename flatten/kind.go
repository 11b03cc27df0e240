package flatten

import (
	"fmt"
	"strings"
)

// Kind is the handling strategy for an element.
type Kind int

const (
	// Container recurses into the element's children and emits
	// nothing for the element itself. Unrecognized elements are
	// handled as containers.
	Container Kind = iota
	// LineBreak emits a newline, except at the start of the output.
	LineBreak
	// Emphasis emits the element's text inline, dropping the markup.
	Emphasis
	// Citation emits the element's text inline, dropping the markup.
	Citation
	// FootnoteRef records the element's ID attribute as a footnote
	// reference and emits only its label text, if any.
	FootnoteRef
	// Paragraph emits the element's text between boundaries and
	// records it as a paragraph.
	Paragraph
	// Table records the element as a table and emits its text. Tables
	// inside a table are not recorded again.
	Table

	numKinds
)

var kindNames = [numKinds]string{
	Container:   "container",
	LineBreak:   "line-break",
	Emphasis:    "emphasis",
	Citation:    "citation",
	FootnoteRef: "footnote-ref",
	Paragraph:   "paragraph",
	Table:       "table",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the defined Kinds.
func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// ParseKind returns the Kind named s, as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Container, fmt.Errorf("unknown element kind %q", s)
}

// Kinds maps element local names to their handling Kind. Names are
// case-sensitive, as in the gii-norm DTD.
type Kinds map[string]Kind

// DefaultKinds returns the element table for gii-norm documents.
//
// Names mapped to Container are known structural elements; they are
// handled like unrecognized elements but are not reported.
func DefaultKinds() Kinds {
	return Kinds{
		"BR": LineBreak,

		"B":     Emphasis,
		"I":     Emphasis,
		"U":     Emphasis,
		"SUP":   Emphasis,
		"SUB":   Emphasis,
		"SP":    Emphasis,
		"small": Emphasis,

		"Citation": Citation,

		"FnR": FootnoteRef,

		"P": Paragraph,

		"table": Table,

		"Content":   Container,
		"TOC":       Container,
		"Title":     Container,
		"Subtitle":  Container,
		"Ident":     Container,
		"DL":        Container,
		"DT":        Container,
		"DD":        Container,
		"LA":        Container,
		"pre":       Container,
		"Revision":  Container,
		"noindex":   Container,
		"Footnotes": Container,
		"Footnote":  Container,
		"FnArea":    Container,
		"IMG":       Container,
		"FILE":      Container,
		"tgroup":    Container,
		"colspec":   Container,
		"spanspec":  Container,
		"thead":     Container,
		"tbody":     Container,
		"tfoot":     Container,
		"row":       Container,
		"entry":     Container,
	}
}

// Clone returns a copy of ks.
func (ks Kinds) Clone() Kinds {
	c := make(Kinds, len(ks))
	for name, k := range ks {
		c[name] = k
	}
	return c
}
