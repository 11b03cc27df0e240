package giierr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// Kind represents the class of a parse anomaly
type Kind int

const (
	// KindSyntax indicates the input is not well-formed UTF-8 markup
	KindSyntax Kind = iota
	// KindMissingMetadata indicates a <norm> without a <metadaten> block
	KindMissingMetadata
	// KindDuplicateFootnoteID indicates two footnotes sharing an ID
	// within one footnote container
	KindDuplicateFootnoteID
	// KindUnrecognizedElement indicates an element without a specific
	// handling rule, treated as a pass-through container
	KindUnrecognizedElement
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindMissingMetadata:
		return "missing-metadata"
	case KindDuplicateFootnoteID:
		return "duplicate-footnote-id"
	case KindUnrecognizedElement:
		return "unrecognized-element"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "syntax":
		*k = KindSyntax
	case "missing-metadata":
		*k = KindMissingMetadata
	case "duplicate-footnote-id":
		*k = KindDuplicateFootnoteID
	case "unrecognized-element":
		*k = KindUnrecognizedElement
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Severity represents how an anomaly affects the parse
type Severity int

const (
	// SeverityError aborts the parse; no document is produced
	SeverityError Severity = iota
	// SeverityWarning is recorded alongside the parsed document
	SeverityWarning
	// SeverityNotice is informational and only logged
	SeverityNotice
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNotice:
		return "notice"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "notice":
		*s = SeverityNotice
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents an anomaly found while parsing a gii-norm document.
//
// Path locates the affected node, e.g. "/dokumente/norm[3]/textdaten/text/Footnotes".
// Element and ID name the offending element and footnote identifier
// where relevant.
type Error struct {
	XMLName  xml.Name `xml:"parse-error" json:"-"`
	Kind     Kind     `xml:"kind" json:"kind"`
	Severity Severity `xml:"severity" json:"severity"`
	Path     string   `xml:"path,omitempty" json:"path,omitempty"`
	Element  string   `xml:"element,omitempty" json:"element,omitempty"`
	ID       string   `xml:"id,omitempty" json:"id,omitempty"`
	Message  string   `xml:"message,omitempty" json:"message,omitempty"`

	cause error
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s %s", e.Severity, e.Kind)
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.ID != "" {
		s += " id:" + e.ID
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// Unwrap returns the underlying cause, if any
func (e Error) Unwrap() error { return e.cause }

// Syntax returns a fatal error for input that is not well-formed markup
func Syntax(opts ...Option) *Error {
	e := &Error{Kind: KindSyntax}
	for _, opt := range opts {
		opt(e)
	}
	// syntax errors are always fatal
	e.Severity = SeverityError
	return e
}

// MissingMetadata returns a warning for the norm at path lacking <metadaten>
func MissingMetadata(path string, opts ...Option) *Error {
	e := &Error{Kind: KindMissingMetadata, Severity: SeverityWarning, Path: path, Element: "metadaten"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DuplicateFootnoteID returns a warning for a repeated footnote identifier
func DuplicateFootnoteID(id string, opts ...Option) *Error {
	e := &Error{Kind: KindDuplicateFootnoteID, Severity: SeverityWarning, Element: "Footnote", ID: id}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnrecognizedElement returns a notice for an element degraded to a
// pass-through container
func UnrecognizedElement(elementName string, opts ...Option) *Error {
	e := &Error{Kind: KindUnrecognizedElement, Element: elementName}
	for _, opt := range opts {
		opt(e)
	}
	e.Severity = SeverityNotice
	return e
}

// Is reports whether err is, or wraps, an *Error of kind k
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// IsSyntax reports whether err is, or wraps, a syntax error
func IsSyntax(err error) bool { return Is(err, KindSyntax) }
