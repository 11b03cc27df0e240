package parser

import (
	"github.com/andaru/gii/model"
	"github.com/antchfx/xmlquery"
)

// metadata parses a <metadaten> element. Every field is optional; an
// absent element leaves the field nil.
func (ps *parse) metadata(n *xmlquery.Node, path string) model.Metadata {
	var m model.Metadata

	for _, e := range children(n, "jurabk") {
		if s := directText(e); s != "" {
			m.LegalAbbreviations = append(m.LegalAbbreviations, s)
		}
	}
	m.OfficialAbbreviation = directTextOf(child(n, "amtabk"))

	if e := child(n, "ausfertigung-datum"); e != nil {
		m.PromulgationDate = directTextOf(e)
		m.PromulgationDateManual = flag(e, "manuell")
	}

	for _, e := range children(n, "fundstelle") {
		if c, ok := citation(e); ok {
			m.Citations = append(m.Citations, c)
		}
	}

	m.ShortTitle = ps.flatText(child(n, "kurzue"), path)
	m.LongTitle = ps.flatText(child(n, "langue"), path)

	if e := child(n, "gliederungseinheit"); e != nil {
		m.StructuralUnit = ps.structuralUnit(e, path+"/gliederungseinheit")
	}

	m.Designation = directTextOf(child(n, "enbez"))

	if e := child(n, "titel"); e != nil {
		m.Title = ps.flatText(e, path)
		m.TitleFormat = attr(e, "format")
	}

	for _, e := range children(n, "standangabe") {
		if v, ok := ps.versionNote(e, path+"/standangabe"); ok {
			m.VersionNotes = append(m.VersionNotes, v)
		}
	}
	return m
}

// citation parses a <fundstelle>. Citations without both a
// <periodikum> and a <zitstelle> are dropped.
func citation(n *xmlquery.Node) (model.Citation, bool) {
	periodikum, zitstelle := child(n, "periodikum"), child(n, "zitstelle")
	if periodikum == nil || zitstelle == nil {
		return model.Citation{}, false
	}
	c := model.Citation{
		Periodical: directText(periodikum),
		Location:   directText(zitstelle),
		Type:       attr(n, "typ"),
	}
	if aa := child(n, "anlageabgabe"); aa != nil {
		c.AttachmentDate = directTextOf(child(aa, "anlagedat"))
		c.DocumentStatus = directTextOf(child(aa, "dokst"))
		c.SubmissionDate = directTextOf(child(aa, "abgabedat"))
	}
	return c, true
}

func (ps *parse) structuralUnit(n *xmlquery.Node, path string) *model.StructuralUnit {
	return &model.StructuralUnit{
		Code:  directTextOf(child(n, "gliederungskennzahl")),
		Label: directTextOf(child(n, "gliederungsbez")),
		Title: ps.flatText(child(n, "gliederungstitel"), path),
	}
}

// versionNote parses a <standangabe>. Notes without a <standtyp> are
// dropped.
func (ps *parse) versionNote(n *xmlquery.Node, path string) (model.VersionNote, bool) {
	typ := child(n, "standtyp")
	if typ == nil {
		return model.VersionNote{}, false
	}
	return model.VersionNote{
		Type:    directText(typ),
		Comment: ps.flatText(child(n, "standkommentar"), path),
		Checked: flag(n, "checked"),
	}, true
}
