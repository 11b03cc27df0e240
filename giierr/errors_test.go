package giierr

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		xml   string
		json  string
	}{
		{
			err:   Syntax(WithMessage("unexpected EOF")),
			error: "error syntax unexpected EOF",
			xml:   "<parse-error><kind>syntax</kind><severity>error</severity><message>unexpected EOF</message></parse-error>",
			json:  "{\"kind\":\"syntax\",\"severity\":\"error\",\"message\":\"unexpected EOF\"}",
		},

		{
			err:   MissingMetadata("/dokumente/norm[2]"),
			error: "warning missing-metadata path:/dokumente/norm[2] element:metadaten",
			xml:   "<parse-error><kind>missing-metadata</kind><severity>warning</severity><path>/dokumente/norm[2]</path><element>metadaten</element></parse-error>",
			json:  "{\"kind\":\"missing-metadata\",\"severity\":\"warning\",\"path\":\"/dokumente/norm[2]\",\"element\":\"metadaten\"}",
		},

		{
			err:   DuplicateFootnoteID("F1", WithPath("/dokumente/norm[1]/textdaten/text/Footnotes")),
			error: "warning duplicate-footnote-id path:/dokumente/norm[1]/textdaten/text/Footnotes element:Footnote id:F1",
			xml:   "<parse-error><kind>duplicate-footnote-id</kind><severity>warning</severity><path>/dokumente/norm[1]/textdaten/text/Footnotes</path><element>Footnote</element><id>F1</id></parse-error>",
			json:  "{\"kind\":\"duplicate-footnote-id\",\"severity\":\"warning\",\"path\":\"/dokumente/norm[1]/textdaten/text/Footnotes\",\"element\":\"Footnote\",\"id\":\"F1\"}",
		},

		{
			err:   UnrecognizedElement("kommentar"),
			error: "notice unrecognized-element element:kommentar",
			xml:   "<parse-error><kind>unrecognized-element</kind><severity>notice</severity><element>kommentar</element></parse-error>",
			json:  "{\"kind\":\"unrecognized-element\",\"severity\":\"notice\",\"element\":\"kommentar\"}",
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			bXML, _ := xml.Marshal(tc.err)
			bJSON, _ := json.Marshal(tc.err)
			check.Equal(tc.error, tc.err.Error())
			check.Equal(tc.json, string(bJSON))
			check.Equal(tc.xml, string(bXML))

			ev := Error{}
			if check.NoError(xml.Unmarshal(bXML, &ev)) {
				evXML, _ := xml.Marshal(ev)
				check.Equal(tc.xml, string(evXML))
			}
			ev = Error{}
			if check.NoError(json.Unmarshal(bJSON, &ev)) {
				evJSON, _ := json.Marshal(ev)
				check.Equal(tc.json, string(evJSON))
			}
		})
	}
}

func TestSeverityFixed(t *testing.T) {
	check := assert.New(t)
	check.Equal(SeverityError, Syntax().Severity)
	check.Equal(SeverityNotice, UnrecognizedElement("x").Severity)
}

func TestCause(t *testing.T) {
	check := assert.New(t)
	err := errors.WithStack(Syntax(WithCause(io.ErrUnexpectedEOF)))

	check.True(IsSyntax(err))
	check.False(Is(err, KindMissingMetadata))
	check.True(errors.Is(err, io.ErrUnexpectedEOF))
	check.Equal("error syntax unexpected EOF", errors.Cause(err).Error())

	check.False(IsSyntax(io.EOF))
	check.False(IsSyntax(nil))
}

func TestKindText(t *testing.T) {
	check := assert.New(t)
	for _, k := range []Kind{KindSyntax, KindMissingMetadata, KindDuplicateFootnoteID, KindUnrecognizedElement} {
		var got Kind
		b, _ := k.MarshalText()
		if check.NoError(got.UnmarshalText(b)) {
			check.Equal(k, got)
		}
	}
	var k Kind
	check.Error(k.UnmarshalText([]byte("bogus")))
	check.Equal("Kind(42)", Kind(42).String())
}
