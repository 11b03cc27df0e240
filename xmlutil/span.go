package xmlutil

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"unicode/utf8"
)

// Span is the half-open byte range [Start, End) an element occupies
// in its source document, from the '<' of its start tag through the
// '>' of its end tag.
type Span struct {
	Start int64
	End   int64
}

// Of returns the bytes of input covered by s.
func (s Span) Of(input []byte) []byte { return input[s.Start:s.End] }

var (
	// ErrInvalidUTF8 is returned by Scan for input that is not valid UTF-8
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	// ErrNoRoot is returned by Scan for input without any element
	ErrNoRoot = errors.New("no root element")
	// ErrMultipleRoots is returned by Scan for input with more than
	// one top-level element
	ErrMultipleRoots = errors.New("multiple root elements")
	// ErrTextOutsideRoot is returned by Scan for non-whitespace
	// character data outside the root element
	ErrTextOutsideRoot = errors.New("character data outside root element")
)

// Scan tokenizes input with a strict encoding/xml decoder, confirming
// it is a single well-formed UTF-8 document, and returns the spans of
// the outermost elements matching name, in document order. Elements
// matching name nested within a matched element are part of the outer
// span and are not reported separately.
//
// No CharsetReader is configured, so documents declaring a non-UTF-8
// encoding are rejected.
func Scan(input []byte, name xml.Name) ([]Span, error) {
	if !utf8.Valid(input) {
		return nil, ErrInvalidUTF8
	}
	var (
		spans  []Span
		start  int64
		depth  int
		inside int
		roots  int
	)
	d := xml.NewDecoder(bytes.NewReader(input))
	for {
		offset := d.InputOffset()
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch token := token.(type) {
		case xml.StartElement:
			if depth == 0 {
				if roots++; roots > 1 {
					return nil, ErrMultipleRoots
				}
			}
			depth++
			if Matches(token.Name, name) {
				if inside == 0 {
					start = offset
				}
				inside++
			}
		case xml.EndElement:
			depth--
			if inside > 0 && Matches(token.Name, name) {
				if inside--; inside == 0 {
					spans = append(spans, Span{Start: start, End: d.InputOffset()})
				}
			}
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(token)) > 0 {
				return nil, ErrTextOutsideRoot
			}
		}
	}
	if roots == 0 {
		return nil, ErrNoRoot
	}
	return spans, nil
}
