package parser

import (
	"fmt"
	"strings"

	"github.com/andaru/gii/flatten"
	"github.com/andaru/gii/giierr"
	"github.com/andaru/gii/model"
	"github.com/andaru/gii/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
)

var (
	xpRoot     = xpath.MustCompile(`/*`)
	xpNorms    = xpath.MustCompile(`/*/norm`)
	xpMetadata = xpath.MustCompile(`metadaten`)
	xpTextData = xpath.MustCompile(`textdaten`)
)

// parse is the state of a single parse.
type parse struct {
	p        *Parser
	input    []byte
	tables   map[*xmlquery.Node]xmlutil.Span
	warnings []*giierr.Error
	noticed  map[string]bool
}

func newParse(p *Parser, input []byte, doc *xmlquery.Node, spans []xmlutil.Span) *parse {
	ps := &parse{p: p, input: input, noticed: map[string]bool{}}
	ps.tables = indexTables(doc, spans)
	return ps
}

// indexTables pairs the outermost <table> elements of doc with the
// spans found by xmlutil.Scan. Both are in document order.
func indexTables(doc *xmlquery.Node, spans []xmlutil.Span) map[*xmlquery.Node]xmlutil.Span {
	var tables []*xmlquery.Node
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xmlquery.ElementNode {
				continue
			}
			if c.Data == tableName.Local {
				tables = append(tables, c)
				continue
			}
			walk(c)
		}
	}
	walk(doc)

	if len(tables) != len(spans) {
		glog.Warningf("gii: found %d table element(s) but %d table span(s); unmatched tables are re-serialized",
			len(tables), len(spans))
	}
	index := make(map[*xmlquery.Node]xmlutil.Span, len(tables))
	for i := 0; i < len(tables) && i < len(spans); i++ {
		index[tables[i]] = spans[i]
	}
	return index
}

func (ps *parse) document(doc *xmlquery.Node) *model.Document {
	root := xmlquery.QuerySelector(doc, xpRoot)
	d := &model.Document{
		Norms:     []model.Norm{},
		BuildDate: attr(root, "builddate"),
		DocNr:     attr(root, "doknr"),
	}
	for i, n := range xmlquery.QuerySelectorAll(doc, xpNorms) {
		path := fmt.Sprintf("/%s/norm[%d]", root.Data, i+1)
		if norm, ok := ps.norm(n, path); ok {
			d.Norms = append(d.Norms, norm)
		}
	}
	return d
}

func (ps *parse) norm(n *xmlquery.Node, path string) (model.Norm, bool) {
	md := xmlquery.QuerySelector(n, xpMetadata)
	if md == nil {
		var opts []giierr.Option
		if doknr := attr(n, "doknr"); doknr != nil {
			opts = append(opts, giierr.WithMessage("doknr "+*doknr))
		}
		ps.warn(giierr.MissingMetadata(path, opts...))
		return model.Norm{}, false
	}
	norm := model.Norm{
		Metadata:  ps.metadata(md, path+"/metadaten"),
		BuildDate: attr(n, "builddate"),
		DocNr:     attr(n, "doknr"),
	}
	if td := xmlquery.QuerySelector(n, xpTextData); td != nil {
		norm.TextData = ps.textData(td, path+"/textdaten")
	}
	return norm, true
}

func (ps *parse) warn(e *giierr.Error) {
	ps.warnings = append(ps.warnings, e)
	glog.Warningf("gii: %v", e)
	if ps.p.observer != nil {
		ps.p.observer.Anomaly(e)
	}
}

// notice reports an unrecognized element once per parse.
func (ps *parse) notice(name, path string) {
	if ps.noticed[name] {
		return
	}
	ps.noticed[name] = true
	e := giierr.UnrecognizedElement(name, giierr.WithPath(path))
	if ps.p.logNotices {
		glog.V(1).Infof("gii: %v", e)
	}
	if ps.p.observer != nil {
		ps.p.observer.Anomaly(e)
	}
}

// flatten flattens n's children, reporting unrecognized elements
// found below path.
func (ps *parse) flatten(n *xmlquery.Node, path string) flatten.Result {
	r := ps.p.flattener.Flatten(n)
	for _, name := range r.Unrecognized {
		ps.notice(name, path)
	}
	return r
}

// flatText returns the flattened text of n, or nil if n is nil.
func (ps *parse) flatText(n *xmlquery.Node, path string) *string {
	if n == nil {
		return nil
	}
	s := ps.flatten(n, path+"/"+n.Data).Text
	return &s
}

// child returns the first child element of n named name.
func child(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// children returns the child elements of n named name.
func children(n *xmlquery.Node, name string) (ns []*xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			ns = append(ns, c)
		}
	}
	return ns
}

// directText returns the text of n preceding its first child element
// or comment, with runs of XML whitespace collapsed to a single space.
// Other spacing, such as U+00A0, is kept.
func directText(n *xmlquery.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.TextNode && c.Type != xmlquery.CharDataNode {
			break
		}
		b.WriteString(c.Data)
	}
	return strings.Join(strings.FieldsFunc(b.String(), isXMLSpace), " ")
}

func isXMLSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }

// directTextOf returns the direct text of n, or nil if n is nil.
func directTextOf(n *xmlquery.Node) *string {
	if n == nil {
		return nil
	}
	s := directText(n)
	return &s
}

// attr returns the value of n's attribute name, or nil if n is nil or
// has no such attribute.
func attr(n *xmlquery.Node, name string) *string {
	if n == nil {
		return nil
	}
	for _, a := range n.Attr {
		if a.Name.Local == name {
			v := a.Value
			return &v
		}
	}
	return nil
}

// flag reports whether n's attribute name is set to "ja".
func flag(n *xmlquery.Node, name string) bool {
	v := attr(n, name)
	return v != nil && strings.EqualFold(strings.TrimSpace(*v), "ja")
}
