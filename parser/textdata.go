package parser

import (
	"github.com/andaru/gii/giierr"
	"github.com/andaru/gii/model"
	"github.com/antchfx/xmlquery"
)

func (ps *parse) textData(n *xmlquery.Node, path string) *model.TextData {
	td := &model.TextData{}
	if e := child(n, "text"); e != nil {
		td.Text = ps.textContent(e, path+"/text")
	}
	if e := child(n, "fussnoten"); e != nil {
		td.Footnotes = ps.textContent(e, path+"/fussnoten")
	}
	return td
}

// textContent parses a <text> or <fussnoten> element: the body is the
// <Content> child, or the <TOC> child if there is no <Content>.
func (ps *parse) textContent(n *xmlquery.Node, path string) *model.TextContent {
	tc := &model.TextContent{Format: attr(n, "format")}
	body := child(n, "Content")
	if body == nil {
		body = child(n, "TOC")
	}
	if body != nil {
		tc.FormattedText = ps.formattedText(body, path+"/"+body.Data)
	}
	if e := child(n, "Footnotes"); e != nil {
		tc.Footnotes = ps.footnotes(e, path+"/Footnotes")
	}
	return tc
}

func (ps *parse) formattedText(n *xmlquery.Node, path string) model.FormattedText {
	r := ps.flatten(n, path)
	ft := model.FormattedText{
		Content:      r.Text,
		Paragraphs:   r.Paragraphs,
		FootnoteRefs: r.FootnoteRefs,
	}
	for _, t := range r.Tables {
		ft.Tables = append(ft.Tables, ps.table(t, path))
	}
	return ft
}

// table captures a <table> as its verbatim source markup, with the
// flattened text of its <Title> child, if any.
func (ps *parse) table(n *xmlquery.Node, path string) model.Table {
	t := model.Table{Title: ps.flatText(child(n, "Title"), path+"/table")}
	if span, ok := ps.tables[n]; ok {
		t.Raw = string(span.Of(ps.input))
	} else {
		t.Raw = n.OutputXML(true)
	}
	return t
}

// footnotes parses the <Footnote> children of a <Footnotes> container.
// Footnotes without an ID are dropped. A repeated ID is reported, and
// its content replaces the earlier footnote's.
func (ps *parse) footnotes(n *xmlquery.Node, path string) []model.Footnote {
	var fns []model.Footnote
	index := map[string]int{}
	for _, e := range children(n, "Footnote") {
		id := model.Value(attr(e, "ID"))
		if id == "" {
			continue
		}
		fn := model.Footnote{
			ID:      id,
			Content: ps.flatten(e, path+"/Footnote").Text,
			Prefix:  attr(e, "Prefix"),
			FnZ:     attr(e, "FnZ"),
			Postfix: attr(e, "Postfix"),
			Pos:     attr(e, "Pos"),
			Group:   attr(e, "Group"),
		}
		if i, dup := index[id]; dup {
			ps.warn(giierr.DuplicateFootnoteID(id, giierr.WithPath(path)))
			fns[i] = fn
			continue
		}
		index[id] = len(fns)
		fns = append(fns, fn)
	}
	return fns
}
