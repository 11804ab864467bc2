/*
The middleware package defines what a middleware is in switchback and a small set of basic middlewares.

The available middlewares are:
  - CatchPanic
  - LogRequest
  - RequestID

Compose them with Chain:

	d := resp.NewResponder()
	handler := middleware.Chain(mux,
		middleware.RequestID(),
		middleware.LogRequest(log),
		middleware.CatchPanic(d),
	)
*/
package middleware
