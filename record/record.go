// Package record projects parsed gii-norm documents into legal text
// rows, one per paragraph of sectioned norm text, as stored by the
// gesetze-im-internet.de ingestion.
package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/andaru/gii/model"
)

// BaseURL is the publication site of gii-norm documents.
const BaseURL = "https://www.gesetze-im-internet.de"

// MetadataSection is the Section of a metadata-only LegalText.
const MetadataSection = "Metadaten"

// LegalText is one paragraph of a legal code.
//
// Code, Section and SubSection together identify a row.
type LegalText struct {
	Text string `json:"text"`
	// Code is the download code the document was fetched by,
	// e.g. "bgb" or "rag_1".
	Code string `json:"code"`
	// Section is the norm's designation, e.g. "§ 1".
	Section string `json:"section"`
	// SubSection is the paragraph number, e.g. "2" for text beginning
	// with "(2)", or "".
	SubSection string `json:"sub_section"`
}

// Hash returns the lowercase hex SHA-256 digest of the text, used to
// detect changed rows between ingestions.
func (lt LegalText) Hash() string { return Hash(lt.Text) }

// Hash returns the lowercase hex SHA-256 digest of text.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// PDFURL returns the address of the PDF rendition of code.
func PDFURL(code string) string { return fmt.Sprintf("%s/%s/%s.pdf", BaseURL, code, code) }

// HTMLURL returns the address of the HTML rendition of code.
func HTMLURL(code string) string { return fmt.Sprintf("%s/%s/index.html", BaseURL, code) }

// ArchiveURL returns the address of the xml.zip archive of code.
func ArchiveURL(code string) string { return fmt.Sprintf("%s/%s/xml.zip", BaseURL, code) }

// SubSection returns the paragraph number of text beginning with a
// parenthesized marker such as "(3)" or "(3a)", or "".
func SubSection(text string) string {
	if !strings.HasPrefix(text, "(") {
		return ""
	}
	s := text[1:]
	if i := strings.IndexAny(s, "()"); i >= 0 {
		s = s[:i]
	}
	return s
}

// FromDocument returns the rows of doc fetched by code: one per
// paragraph of the main text of every norm with a designation.
//
// If there are none, but doc has norms, a single metadata-only row
// is returned instead, describing the first norm and linking to the
// published renditions. A document without norms yields no rows.
func FromDocument(doc *model.Document, code string) []LegalText {
	if doc == nil {
		return nil
	}
	var rows []LegalText
	for _, norm := range doc.Norms {
		section := norm.Metadata.Designation
		body := norm.Body()
		if section == nil || *section == "" || body == nil {
			continue
		}
		for _, p := range body.Paragraphs {
			rows = append(rows, LegalText{
				Text:       p,
				Code:       code,
				Section:    *section,
				SubSection: SubSection(p),
			})
		}
	}
	if len(rows) == 0 && len(doc.Norms) > 0 {
		rows = append(rows, MetadataOnly(doc.Norms[0], code))
	}
	return rows
}

// MetadataOnly returns the row describing a code whose full text is
// not published as XML, built from the metadata of its first norm.
func MetadataOnly(norm model.Norm, code string) LegalText {
	md := norm.Metadata
	title := firstNonEmpty(model.Value(md.LongTitle), model.Value(md.ShortTitle), strings.ToUpper(code))
	abbr := firstNonEmpty(md.Abbreviation(), strings.ToUpper(code))

	var citation string
	if len(md.Citations) > 0 {
		c := md.Citations[0]
		citation = fmt.Sprintf(" (Fundstelle: %s %s)", c.Periodical, c.Location)
	}
	var notes string
	if fs := norm.FootnoteSection(); fs != nil {
		notes = strings.Join(fs.Paragraphs, " ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[METADATA-ONLY] %s%s\n\n", title, citation)
	b.WriteString("Dieses Gesetz/Abkommen ist nicht als Volltext verfügbar. \n")
	b.WriteString("Es handelt sich vermutlich um ein internationales Abkommen, einen Vertrag oder eine ältere Norm.\n\n")
	fmt.Fprintf(&b, "Offizieller Name: %s\n", title)
	fmt.Fprintf(&b, "Abkürzung: %s\n\n", abbr)
	b.WriteString("Volltext verfügbar unter:\n")
	fmt.Fprintf(&b, "- PDF: %s\n", PDFURL(code))
	fmt.Fprintf(&b, "- HTML: %s\n\n", HTMLURL(code))
	b.WriteString(notes)

	return LegalText{
		Text:    strings.TrimSpace(b.String()),
		Code:    code,
		Section: MetadataSection,
	}
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
