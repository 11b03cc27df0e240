package flatten

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func root(t *testing.T, input string) *xmlquery.Node {
	doc, err := xmlquery.Parse(strings.NewReader(input))
	require.NoError(t, err)
	n := xmlquery.FindOne(doc, "/*")
	require.NotNil(t, n)
	return n
}

func TestFlatten(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string

		wantText         string
		wantParagraphs   []string
		wantRefs         []string
		wantTables       int
		wantUnrecognized []string
	}{
		{
			name:     "line breaks",
			input:    `<Content>Line 1<BR/>Line 2<BR/>Line 3</Content>`,
			wantText: "Line 1\nLine 2\nLine 3",
		},
		{
			name:     "no line break at start of output",
			input:    `<Content><BR/>first<BR/></Content>`,
			wantText: "first",
		},
		{
			name:           "emphasis is dropped",
			input:          `<Content><P>Text with <B>bold</B> and <I>italic</I></P></Content>`,
			wantText:       "Text with bold and italic",
			wantParagraphs: []string{"Text with bold and italic"},
		},
		{
			name:           "all emphasis kinds",
			input:          `<Content><P>m<SUP>2</SUP> H<SUB>2</SUB>O <U>u</U> <SP>s p</SP> <small>k</small></P></Content>`,
			wantText:       "m2 H2O u s p k",
			wantParagraphs: []string{"m2 H2O u s p k"},
		},
		{
			name:           "citation inline",
			input:          `<Content><P>nach <Citation>§ 5 Abs. 2</Citation> gilt</P></Content>`,
			wantText:       "nach § 5 Abs. 2 gilt",
			wantParagraphs: []string{"nach § 5 Abs. 2 gilt"},
		},
		{
			name:           "repeated footnote reference",
			input:          `<Content><P>a<FnR ID="1"/> b<FnR ID="1"/></P></Content>`,
			wantText:       "a b",
			wantParagraphs: []string{"a b"},
			wantRefs:       []string{"1", "1"},
		},
		{
			name:           "footnote reference label text",
			input:          `<Content><P>Satz<FnR ID="F2">*)</FnR> Ende<FnR/></P></Content>`,
			wantText:       "Satz*) Ende",
			wantParagraphs: []string{"Satz*) Ende"},
			wantRefs:       []string{"F2"},
		},
		{
			name:           "tail text and paragraph boundaries",
			input:          `<Content><P>(1) eins</P>zwischen<P>(2) zwei</P></Content>`,
			wantText:       "(1) eins\nzwischen\n(2) zwei",
			wantParagraphs: []string{"(1) eins", "(2) zwei"},
		},
		{
			name: "indentation is not injected",
			input: `<Content>
      <P>Die Rechtsfähigkeit des Menschen beginnt mit der Vollendung der Geburt.</P>
    </Content>`,
			wantText:       "Die Rechtsfähigkeit des Menschen beginnt mit der Vollendung der Geburt.",
			wantParagraphs: []string{"Die Rechtsfähigkeit des Menschen beginnt mit der Vollendung der Geburt."},
		},
		{
			name:           "empty paragraphs are dropped",
			input:          `<Content><P/><P>  </P><P>x</P></Content>`,
			wantText:       "x",
			wantParagraphs: []string{"x"},
		},
		{
			name:           "nested paragraphs ordered by start tag",
			input:          `<Content><P>outer <P>inner</P> after</P></Content>`,
			wantText:       "outer\ninner\nafter",
			wantParagraphs: []string{"outer\ninner\nafter", "inner"},
		},
		{
			name:             "unrecognized elements pass through",
			input:            `<Content><P>a <foo>b</foo> c<foo/><bar>d</bar></P></Content>`,
			wantText:         "a b cd",
			wantParagraphs:   []string{"a b cd"},
			wantUnrecognized: []string{"foo", "bar"},
		},
		{
			name:           "known containers are not reported",
			input:          `<Content><DL><DT>1.</DT><DD><LA>erstens</LA></DD></DL></Content>`,
			wantText:       "1.erstens",
			wantParagraphs: nil,
		},
		{
			name: "table content is flattened",
			input: `<Content><P>x</P><table><Title>T</Title><tgroup><row><entry><P>cell<FnR ID="F9"/></P>` +
				`<table><row><entry>inner</entry></row></table></entry></row></tgroup></table></Content>`,
			wantText:       "x\nT\ncell\ninner",
			wantParagraphs: []string{"x", "cell"},
			wantRefs:       []string{"F9"},
			wantTables:     1,
		},
		{
			name: "paragraphs in nested tables",
			input: `<Content><P>x</P><table><Title>T</Title><table><Title>U</Title><P>in</P></table></table>` +
				`<P>y<FnR ID="1"/>z<FnR ID="1">lab</FnR></P></Content>`,
			wantText:       "x\nT\nU\nin\nyzlab",
			wantParagraphs: []string{"x", "in", "yzlab"},
			wantRefs:       []string{"1", "1"},
			wantTables:     1,
		},
		{
			name:           "sibling tables",
			input:          `<Content><table>a</table><P>b</P><table>c</table></Content>`,
			wantText:       "a\nb\nc",
			wantParagraphs: []string{"b"},
			wantTables:     2,
		},
		{
			name:           "character data and comments",
			input:          `<Content><P><![CDATA[a < b]]><!-- note --> c</P></Content>`,
			wantText:       "a < b c",
			wantParagraphs: []string{"a < b c"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			got := New(nil).Flatten(root(t, tc.input))
			check.Equal(tc.wantText, got.Text)
			check.Equal(tc.wantParagraphs, got.Paragraphs)
			check.Equal(tc.wantRefs, got.FootnoteRefs)
			check.Len(got.Tables, tc.wantTables)
			check.Equal(tc.wantUnrecognized, got.Unrecognized)
		})
	}
}

func TestFlattenTablesAreOutermost(t *testing.T) {
	check := assert.New(t)
	got := New(nil).Flatten(root(t, `<Content><table ID="outer"><table ID="inner"/></table></Content>`))
	if check.Len(got.Tables, 1) {
		check.Equal("outer", got.Tables[0].SelectAttr("ID"))
	}
}

func TestFlattenCustomKinds(t *testing.T) {
	check := assert.New(t)
	kinds := Kinds{"X": Paragraph, "N": LineBreak}
	f := New(kinds)
	kinds["P"] = Paragraph // New copies the table

	got := f.Flatten(root(t, `<r><X>a<N/>b</X><P>c</P></r>`))
	check.Equal("a\nb\nc", got.Text)
	check.Equal([]string{"a\nb"}, got.Paragraphs)
	check.Equal([]string{"P"}, got.Unrecognized)

	k, ok := f.Kind("X")
	check.True(ok)
	check.Equal(Paragraph, k)
	_, ok = f.Kind("P")
	check.False(ok)
}

func TestFlattenUndefinedKind(t *testing.T) {
	check := assert.New(t)
	f := New(Kinds{"X": Kind(42), "P": Paragraph})
	k, ok := f.Kind("X")
	check.True(ok)
	check.Equal(Container, k)

	got := f.Flatten(root(t, `<r><P>a<X>b</X></P></r>`))
	check.Equal("ab", got.Text)
	check.Equal([]string{"ab"}, got.Paragraphs)
	check.Nil(got.Unrecognized)
}

func TestFlattenNil(t *testing.T) {
	check := assert.New(t)
	got := New(nil).Flatten(nil)
	check.Equal("", got.Text)
	check.Nil(got.Paragraphs)
}

func TestNormalize(t *testing.T) {
	check := assert.New(t)
	check.Equal("", Normalize(""))
	check.Equal("", Normalize(" \n\t\n"))
	check.Equal("a\nb  c", Normalize("  a \n\n   b  c\n"))
}

func TestKind(t *testing.T) {
	check := assert.New(t)
	for k := Container; k < numKinds; k++ {
		got, err := ParseKind(k.String())
		check.NoError(err)
		check.Equal(k, got)
	}
	_, err := ParseKind("bogus")
	check.Error(err)
	check.Equal("Kind(99)", Kind(99).String())
	check.False(Kind(99).Valid())
	check.False(Kind(-1).Valid())
}
