package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/andaru/gii/flatten"
	"github.com/andaru/gii/giierr"
	"github.com/andaru/gii/model"
	"github.com/andaru/gii/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Observer receives parse events, e.g. to maintain metrics.
type Observer interface {
	// Anomaly is called for every fatal error, warning and notice.
	Anomaly(*giierr.Error)
	// Parsed is called after each successful parse.
	Parsed(norms int, elapsed time.Duration)
}

// Result is a parsed Document together with the non-fatal anomalies
// found while parsing it.
type Result struct {
	Document *model.Document
	Warnings []*giierr.Error
}

// WarningsOf returns the warnings of kind k.
func (r *Result) WarningsOf(k giierr.Kind) (ws []*giierr.Error) {
	for _, w := range r.Warnings {
		if w.Kind == k {
			ws = append(ws, w)
		}
	}
	return ws
}

// Parser parses gii-norm documents.
type Parser struct {
	kinds      flatten.Kinds
	flattener  *flatten.Flattener
	observer   Observer
	logNotices bool
}

// New returns a new Parser configured by opts.
func New(opts ...Option) *Parser {
	p := &Parser{kinds: flatten.DefaultKinds(), logNotices: true}
	for _, opt := range opts {
		opt(p)
	}
	p.flattener = flatten.New(p.kinds)
	return p
}

var (
	defaultParser = New()

	utf8BOM   = []byte("\xef\xbb\xbf")
	tableName = xmlutil.XMLName("table")
)

// ParseBytes parses input using a default Parser.
func ParseBytes(input []byte) (*Result, error) { return defaultParser.ParseBytes(input) }

// ParseString parses input using a default Parser.
func ParseString(input string) (*Result, error) { return defaultParser.ParseString(input) }

// ParseFile parses the file at filename using a default Parser.
func ParseFile(filename string) (*Result, error) { return defaultParser.ParseFile(filename) }

// ParseReader parses the contents of r using a default Parser.
func ParseReader(r io.Reader) (*Result, error) { return defaultParser.ParseReader(r) }

// ParseArchive parses the XML document in a zip archive using a
// default Parser.
func ParseArchive(archive []byte) (*Result, error) { return defaultParser.ParseArchive(archive) }

// ParseBytes parses a complete gii-norm document.
//
// The only error returned is a *giierr.Error of kind KindSyntax
// (wrapped with a stack trace), when input is not a single
// well-formed UTF-8 XML document.
func (p *Parser) ParseBytes(input []byte) (*Result, error) {
	start := time.Now()
	input = bytes.TrimPrefix(input, utf8BOM)

	spans, err := xmlutil.Scan(input, tableName)
	if err != nil {
		return nil, p.syntaxError(err)
	}
	doc, err := xmlquery.Parse(bytes.NewReader(input))
	if err != nil {
		return nil, p.syntaxError(err)
	}

	ps := newParse(p, input, doc, spans)
	result := &Result{Document: ps.document(doc), Warnings: ps.warnings}

	elapsed := time.Since(start)
	if p.observer != nil {
		p.observer.Parsed(len(result.Document.Norms), elapsed)
	}
	if glog.V(2) {
		glog.Infof("gii: parsed doknr=%q: %d norm(s), %d warning(s) in %v",
			model.Value(result.Document.DocNr), len(result.Document.Norms), len(result.Warnings), elapsed)
	}
	return result, nil
}

// ParseString parses a complete gii-norm document.
func (p *Parser) ParseString(input string) (*Result, error) { return p.ParseBytes([]byte(input)) }

// ParseReader reads r to EOF and parses its contents.
func (p *Parser) ParseReader(r io.Reader) (*Result, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "gii: read input")
	}
	return p.ParseBytes(input)
}

// ParseFile reads and parses the file at filename.
func (p *Parser) ParseFile(filename string) (*Result, error) {
	input, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "gii: read %s", filename)
	}
	return p.ParseBytes(input)
}

// ParseArchive parses the document in a zip archive, such as the
// xml.zip published per code by gesetze-im-internet.de. The first
// member with an .xml extension is parsed, or the first member if
// none has one.
func (p *Parser) ParseArchive(archive []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, errors.Wrap(err, "gii: open archive")
	}
	member := archiveMember(zr.File)
	if member == nil {
		return nil, errors.New("gii: archive has no members")
	}
	rc, err := member.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "gii: open archive member %s", member.Name)
	}
	defer rc.Close()
	return p.ParseReader(rc)
}

func archiveMember(files []*zip.File) *zip.File {
	var first *zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if strings.EqualFold(path.Ext(f.Name), ".xml") {
			return f
		}
		if first == nil {
			first = f
		}
	}
	return first
}

func (p *Parser) syntaxError(cause error) error {
	e := giierr.Syntax(giierr.WithCause(cause))
	if p.observer != nil {
		p.observer.Anomaly(e)
	}
	return errors.WithStack(e)
}
