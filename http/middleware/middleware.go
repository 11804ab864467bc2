package middleware

import (
	"net/http"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// NoopAdapter returns the http.Handler unchanged.
//
// Constructors return NoopAdapter when misconfigured
// so a chain stays valid.
func NoopAdapter(h http.Handler) http.Handler { return h }

// Chain glues the set of adapters to the handler.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// A ctxKey is a comparable key for values middlewares store in a request context.
type ctxKey string

func (k ctxKey) String() string { return "switchback context key: " + string(k) }

// RequestIDCtxKey accesses the request ID set by RequestID.
const RequestIDCtxKey ctxKey = "switchback_request_id"
