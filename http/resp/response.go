package resp

import (
	"net/http"

	"github.com/xy-planning-network/switchback/logger"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w         http.ResponseWriter
	r         *http.Request
	closeBody bool
	code      int
	data      any
	headers   http.Header
}

// Code sets the response status code.
//
// Codes pass through unvalidated;
// out-of-range or non-standard codes are written as given.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client as the JSON document.
//
// Used with Responder.Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err sets the status code http.StatusInternalServerError and logs the error.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Header adds the key-value pair to the response headers.
//
// Repeated calls for the same key append values rather than overwrite them.
// The configured JSON content type is forced after all Header options apply,
// so a caller-supplied Content-Type never survives.
func Header(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.headers == nil {
			r.headers = make(http.Header)
		}

		r.headers.Add(key, val)
		return nil
	}
}

// newLogContext helps structure a logger.LogContext from the provided parts.
func newLogContext(r *http.Request, err error, data any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := new(logger.LogContext)
	ctx.Request = r
	ctx.Error = err

	if mapped, ok := data.(map[string]any); ok {
		ctx.Data = mapped
	} else if data != nil {
		ctx.Data = map[string]any{"data": data}
	}

	return ctx
}
