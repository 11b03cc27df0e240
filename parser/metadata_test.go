package parser

import (
	"testing"

	"github.com/andaru/gii/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMetadata(t *testing.T, inner string) model.Metadata {
	res, err := ParseString("<dokumente><norm><metadaten>" + inner + "</metadaten></norm></dokumente>")
	require.NoError(t, err)
	require.Len(t, res.Document.Norms, 1)
	return res.Document.Norms[0].Metadata
}

func TestMetadata(t *testing.T) {
	for _, tc := range []struct {
		name  string
		inner string
		want  model.Metadata
	}{
		{name: "empty"},
		{
			name:  "present but empty",
			inner: `<amtabk/><enbez></enbez><kurzue/>`,
			want: model.Metadata{
				OfficialAbbreviation: model.String(""),
				Designation:          model.String(""),
				ShortTitle:           model.String(""),
			},
		},
		{
			name:  "direct text collapses whitespace",
			inner: "<amtabk>  Ab\n  c  </amtabk><enbez>Art  3</enbez>",
			want: model.Metadata{
				OfficialAbbreviation: model.String("Ab c"),
				Designation:          model.String("Art 3"),
			},
		},
		{
			name:  "direct text keeps no-break spaces",
			inner: "<enbez>§&#160;1</enbez><amtabk>\u00a0X\tY\u00a0</amtabk>",
			want: model.Metadata{
				OfficialAbbreviation: model.String("\u00a0X Y\u00a0"),
				Designation:          model.String("§\u00a01"),
			},
		},
		{
			name:  "direct text stops at child element",
			inner: `<enbez>§ 2<B>a</B></enbez>`,
			want:  model.Metadata{Designation: model.String("§ 2")},
		},
		{
			name:  "manual flag",
			inner: `<ausfertigung-datum manuell="JA">1900-01-01</ausfertigung-datum>`,
			want: model.Metadata{
				PromulgationDate:       model.String("1900-01-01"),
				PromulgationDateManual: true,
			},
		},
		{
			name:  "manual flag other value",
			inner: `<ausfertigung-datum manuell="nein">1900-01-01</ausfertigung-datum>`,
			want:  model.Metadata{PromulgationDate: model.String("1900-01-01")},
		},
		{
			name:  "citation requires zitstelle",
			inner: `<fundstelle><zitstelle>1</zitstelle></fundstelle><fundstelle><periodikum>P</periodikum><zitstelle/></fundstelle>`,
			want:  model.Metadata{Citations: []model.Citation{{Periodical: "P"}}},
		},
		{
			name:  "title with markup",
			inner: `<titel>Erster <I>Titel</I><BR/>zweite Zeile</titel>`,
			want:  model.Metadata{Title: model.String("Erster Titel\nzweite Zeile")},
		},
		{
			name:  "structural unit without children",
			inner: `<gliederungseinheit/>`,
			want:  model.Metadata{StructuralUnit: &model.StructuralUnit{}},
		},
		{
			name:  "version note",
			inner: `<standangabe checked="nein"><standtyp>Neuf</standtyp><standkommentar/></standangabe>`,
			want:  model.Metadata{VersionNotes: []model.VersionNote{{Type: "Neuf", Comment: model.String("")}}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseMetadata(t, tc.inner))
		})
	}
}

func TestMetadataAbbreviation(t *testing.T) {
	check := assert.New(t)
	md := parseMetadata(t, `<jurabk/><jurabk>AO</jurabk><jurabk>AO 1977</jurabk>`)
	check.Equal([]string{"AO", "AO 1977"}, md.LegalAbbreviations)
	check.Equal("AO", md.Abbreviation())
}
