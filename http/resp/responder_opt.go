package resp

import "github.com/xy-planning-network/switchback/logger"

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContentType sets the Content-Type header forced on every response.
//
// Use this to opt into a charset parameter, e.g.:
//
//	NewResponder(WithContentType("application/json; charset=UTF-8"))
//
// An empty ct keeps the default, DefaultContentType.
func WithContentType(ct string) func(*Responder) {
	return func(d *Responder) {
		if ct == "" {
			return
		}

		d.contentType = ct
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}
