package parser

import "github.com/andaru/gii/flatten"

// Option is a constructor option function for the Parser type.
type Option func(*Parser)

// WithElementKind sets the flattening Kind of elements named name,
// adding the name to the element table or replacing its entry. An
// undefined Kind is handled as flatten.Container.
func WithElementKind(name string, kind flatten.Kind) Option {
	return func(p *Parser) { p.kinds[name] = kind }
}

// WithElementKinds applies WithElementKind for every entry of kinds.
func WithElementKinds(kinds flatten.Kinds) Option {
	return func(p *Parser) {
		for name, kind := range kinds {
			p.kinds[name] = kind
		}
	}
}

// WithObserver registers o to receive parse events.
func WithObserver(o Observer) Option { return func(p *Parser) { p.observer = o } }

// WithNoticeLogging enables or disables logging of unrecognized
// element notices. Notices are logged at glog verbosity 1 by default.
func WithNoticeLogging(enabled bool) Option { return func(p *Parser) { p.logNotices = enabled } }
