package giierr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithPath(path string) Option   { return func(e *Error) { e.Path = path } }

// WithCause records err as the underlying cause, and uses its text
// as the message if none was set.
func WithCause(err error) Option {
	return func(e *Error) {
		e.cause = err
		if e.Message == "" && err != nil {
			e.Message = err.Error()
		}
	}
}
