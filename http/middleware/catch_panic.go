package middleware

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/http/resp"
)

// CatchPanic recovers a panicking handler,
// logging the panic and responding with a JSON 500 built by d.
//
// if *resp.Responder is nil, NoopAdapter returns and this middleware does nothing.
func CatchPanic(d *resp.Responder) Adapter {
	if d == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				err := fmt.Errorf("%w: recovered panic: %v", switchback.ErrUnexpected, rec)
				d.ErrorJson(w, r, resp.PlainMessage("internal server error"), resp.Err(err))
			}()

			h.ServeHTTP(w, r)
		})
	}
}
