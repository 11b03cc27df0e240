// Package flatten reduces mixed-content gii-norm markup to plain text.
//
// A Flattener walks the children of a node depth-first. Text nodes
// are appended verbatim; xmlquery represents the text following an
// element's end tag as the element's next sibling, so that "tail" text
// is appended in document order after the element's own content.
// Elements are dispatched by name through a Kinds table to one handler
// per Kind; names missing from the table are handled as Container and
// reported in Result.Unrecognized.
//
// The flattened output is normalized line by line: every line is
// trimmed and blank lines are dropped.
package flatten

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Result is the output of flattening one node.
type Result struct {
	// Text is the normalized flattened text.
	Text string
	// Paragraphs holds the normalized text of each non-empty
	// Paragraph element, ordered by start tag.
	Paragraphs []string
	// FootnoteRefs holds FootnoteRef identifiers as encountered.
	FootnoteRefs []string
	// Tables holds the outermost Table elements, in document order.
	Tables []*xmlquery.Node
	// Unrecognized holds the distinct names of elements absent from
	// the Kinds table, in first-seen order.
	Unrecognized []string
}

// Flattener flattens nodes according to a Kinds table. A Flattener is
// not modified after New and is safe for concurrent use.
type Flattener struct {
	kinds Kinds
}

// New returns a Flattener using a copy of kinds, or DefaultKinds if
// kinds is nil. Names mapped to an undefined Kind are handled as
// Container.
func New(kinds Kinds) *Flattener {
	if kinds == nil {
		kinds = DefaultKinds()
	}
	kinds = kinds.Clone()
	for name, k := range kinds {
		if !k.Valid() {
			kinds[name] = Container
		}
	}
	return &Flattener{kinds: kinds}
}

// Kind returns the Kind for an element name, and whether the name is
// in the table.
func (f *Flattener) Kind(name string) (Kind, bool) {
	k, ok := f.kinds[name]
	return k, ok
}

// Flatten flattens the children of n.
func (f *Flattener) Flatten(n *xmlquery.Node) Result {
	s := &state{f: f}
	if n != nil {
		s.children(n)
	}
	r := Result{
		Text:         Normalize(s.buf.String()),
		FootnoteRefs: s.refs,
		Tables:       s.tables,
		Unrecognized: s.unrecognized,
	}
	for _, p := range s.paragraphs {
		if p != "" {
			r.Paragraphs = append(r.Paragraphs, p)
		}
	}
	return r
}

// Normalize trims each line of s and drops blank lines.
func Normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

type handler func(s *state, n *xmlquery.Node)

var handlers [numKinds]handler

func init() {
	handlers = [numKinds]handler{
		Container:   (*state).container,
		LineBreak:   (*state).lineBreak,
		Emphasis:    (*state).inline,
		Citation:    (*state).inline,
		FootnoteRef: (*state).footnoteRef,
		Paragraph:   (*state).paragraph,
		Table:       (*state).table,
	}
}

type state struct {
	f   *Flattener
	buf strings.Builder

	// paragraphs has a slot per Paragraph element, reserved at its
	// start tag and filled at its end tag
	paragraphs   []string
	refs         []string
	tables       []*xmlquery.Node
	unrecognized []string
	seen         map[string]bool

	// tableDepth is the number of enclosing Table elements
	tableDepth int
}

func (s *state) children(n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.node(c)
	}
}

func (s *state) node(n *xmlquery.Node) {
	switch n.Type {
	case xmlquery.TextNode, xmlquery.CharDataNode:
		s.buf.WriteString(n.Data)
	case xmlquery.ElementNode:
		k, ok := s.f.kinds[n.Data]
		if !ok {
			s.unknown(n.Data)
		}
		handlers[k](s, n)
	}
}

func (s *state) unknown(name string) {
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	if !s.seen[name] {
		s.seen[name] = true
		s.unrecognized = append(s.unrecognized, name)
	}
}

// boundary ends the current output line, if any.
func (s *state) boundary() {
	if out := s.buf.String(); out != "" && out[len(out)-1] != '\n' {
		s.buf.WriteByte('\n')
	}
}

func (s *state) container(n *xmlquery.Node) { s.children(n) }

func (s *state) inline(n *xmlquery.Node) { s.children(n) }

func (s *state) lineBreak(n *xmlquery.Node) {
	if s.buf.Len() > 0 {
		s.buf.WriteByte('\n')
	}
}

func (s *state) footnoteRef(n *xmlquery.Node) {
	if id := n.SelectAttr("ID"); id != "" {
		s.refs = append(s.refs, id)
	}
	s.children(n)
}

func (s *state) paragraph(n *xmlquery.Node) {
	s.boundary()
	start := s.buf.Len()
	slot := len(s.paragraphs)
	s.paragraphs = append(s.paragraphs, "")
	s.children(n)
	s.paragraphs[slot] = Normalize(s.buf.String()[start:])
	s.boundary()
}

func (s *state) table(n *xmlquery.Node) {
	if s.tableDepth == 0 {
		s.tables = append(s.tables, n)
	}
	s.tableDepth++
	s.boundary()
	s.children(n)
	s.boundary()
	s.tableDepth--
}
