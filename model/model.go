// Package model holds the records produced by parsing a gii-norm
// document.
//
// Records are created once by the parser and are only read
// afterwards. Optional values are pointers, so an absent element (nil)
// is distinguishable from an element present with empty text. Slices
// keep source document order.
package model

// Document is the root <dokumente> element.
type Document struct {
	Norms     []Norm  `json:"norms"`
	BuildDate *string `json:"builddate"`
	DocNr     *string `json:"doknr"`
}

// Norm is one addressable unit of a legal code, such as a section.
type Norm struct {
	Metadata  Metadata  `json:"metadaten"`
	TextData  *TextData `json:"textdaten"`
	BuildDate *string   `json:"builddate"`
	DocNr     *string   `json:"doknr"`
}

// Metadata is the <metadaten> block of a norm.
type Metadata struct {
	// LegalAbbreviations holds every <jurabk>, in declaration order.
	LegalAbbreviations     []string        `json:"jurabk"`
	OfficialAbbreviation   *string         `json:"amtabk"`
	PromulgationDate       *string         `json:"ausfertigung_datum"`
	PromulgationDateManual bool            `json:"ausfertigung_datum_manuell"`
	Citations              []Citation      `json:"fundstelle"`
	ShortTitle             *string         `json:"kurzue"`
	LongTitle              *string         `json:"langue"`
	StructuralUnit         *StructuralUnit `json:"gliederungseinheit"`
	// Designation is the <enbez>, e.g. "§ 1" or "Art 3".
	Designation  *string       `json:"enbez"`
	Title        *string       `json:"titel"`
	TitleFormat  *string       `json:"titel_format"`
	VersionNotes []VersionNote `json:"standangabe"`
}

// Citation is a <fundstelle>: where the norm was published.
type Citation struct {
	Periodical     string  `json:"periodikum"`
	Location       string  `json:"zitstelle"`
	Type           *string `json:"typ"`
	AttachmentDate *string `json:"anlagedat"`
	DocumentStatus *string `json:"dokst"`
	SubmissionDate *string `json:"abgabedat"`
}

// StructuralUnit is a <gliederungseinheit>, the book/part/section
// grouping a norm belongs to.
type StructuralUnit struct {
	Code  *string `json:"gliederungskennzahl"`
	Label *string `json:"gliederungsbez"`
	Title *string `json:"gliederungstitel"`
}

// VersionNote is a <standangabe>.
type VersionNote struct {
	Type    string  `json:"standtyp"`
	Comment *string `json:"standkommentar"`
	Checked bool    `json:"checked"`
}

// TextData is the <textdaten> block of a norm.
type TextData struct {
	Text      *TextContent `json:"text"`
	Footnotes *TextContent `json:"fussnoten"`
}

// TextContent is a <text> or <fussnoten> element.
type TextContent struct {
	FormattedText FormattedText `json:"formatted_text"`
	Footnotes     []Footnote    `json:"footnotes"`
	Format        *string       `json:"format"`
}

// FormattedText is the flattened body of a <Content> or <TOC> element.
type FormattedText struct {
	// Content is the whole flattened text, newline-delimited at
	// paragraph and line-break boundaries.
	Content    string   `json:"content"`
	Paragraphs []string `json:"paragraphs"`
	Tables     []Table  `json:"tables"`
	// FootnoteRefs lists <FnR> identifiers as encountered, duplicates
	// included.
	FootnoteRefs []string `json:"footnote_refs"`
}

// Table is a <table> kept as its verbatim source markup.
type Table struct {
	Title *string `json:"title"`
	Raw   string  `json:"raw_content"`
}

// Footnote is a <Footnote> entry of a <Footnotes> container.
type Footnote struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Prefix  *string `json:"prefix"`
	FnZ     *string `json:"fnz"`
	Postfix *string `json:"postfix"`
	Pos     *string `json:"pos"`
	Group   *string `json:"group"`
}
