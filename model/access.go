package model

// String returns a pointer to s, for constructing optional fields.
func String(s string) *string { return &s }

// Value returns the string at p, or "" if p is nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Abbreviation returns the first legal abbreviation, or "".
func (m Metadata) Abbreviation() string {
	if len(m.LegalAbbreviations) == 0 {
		return ""
	}
	return m.LegalAbbreviations[0]
}

// Body returns the formatted text of the norm's main <text> section,
// or nil if the norm has none.
func (n Norm) Body() *FormattedText {
	if n.TextData == nil || n.TextData.Text == nil {
		return nil
	}
	return &n.TextData.Text.FormattedText
}

// FootnoteSection returns the formatted text of the norm's
// <fussnoten> section, or nil if the norm has none.
func (n Norm) FootnoteSection() *FormattedText {
	if n.TextData == nil || n.TextData.Footnotes == nil {
		return nil
	}
	return &n.TextData.Footnotes.FormattedText
}

// Footnote returns the footnote with the given ID.
func (c TextContent) Footnote(id string) (Footnote, bool) {
	for _, fn := range c.Footnotes {
		if fn.ID == id {
			return fn, true
		}
	}
	return Footnote{}, false
}
