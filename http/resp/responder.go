package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/logger"
)

const responderFrames = 0

// DefaultContentType is the Content-Type header a Responder forces on every
// response unless WithContentType configures a different one.
const DefaultContentType = "application/json"

// Responder maintains reusable pieces for responding to HTTP requests with JSON.
// These are the forms of response Responder can execute:
//
//	Json
//	ErrorJson
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how HTTP responses should look.
//
// When handling a specific HTTP request, calling code supplies additional data, status codes,
// and headers through Fn functions.
type Responder struct {
	logger logger.Logger

	// Content-Type header forced on every response,
	// set once at construction
	contentType string

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		contentType: DefaultContentType,
		pool:        &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Json responds with the value set by Data() serialized as a JSON document,
// setting appropriate headers.
//
// The response status code defaults to 200 when no Code() is applied.
// Headers set by Header() are written first;
// the configured JSON content type is forced afterwards,
// so a caller-supplied Content-Type never survives.
//
// If the data has no JSON representation,
// Json returns an ErrUnserializable and writes nothing.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	if rr.code == 0 {
		if err := Code(http.StatusOK)(*doer, rr); err != nil {
			return err
		}
	}

	return doer.write(rr, rr.data)
}

// ErrorJson responds with the JSON document carried by the ErrorBody,
// setting appropriate headers.
//
// The response status code defaults to 400 when no Code() is applied.
//
// A zero-value ErrorBody returns ErrMissingData and writes nothing.
func (doer *Responder) ErrorJson(w http.ResponseWriter, r *http.Request, body ErrorBody, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	doc, err := body.document()
	if err != nil {
		return err
	}

	if rr.code == 0 {
		if err := Code(http.StatusBadRequest)(*doer, rr); err != nil {
			return err
		}
	}

	return doer.write(rr, doc)
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Calling code ought to pass Options in the correct order.
// An option requiring something set by another one should come after.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{closeBody: true, w: w, r: r}

	// NOTE(dlk): check once up front so a zero-option call
	// still returns ErrDone on a done context.
	select {
	case <-r.Context().Done():
		return nil, fmt.Errorf("%w", ErrDone)
	default:
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return nil, err
			}
		}
	}

	return resp, nil
}

// write prerenders payload as JSON into a pooled buffer
// and then writes headers, status code and body.
//
// Prerendering means an unserializable payload writes nothing at all:
// the error returns before any header reaches the wire.
func (doer *Responder) write(rr *Response, payload any) error {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		err = fmt.Errorf("%w: %s", switchback.ErrUnserializable, err)
		doer.logger.Error(err.Error(), newLogContext(rr.r, err, nil))
		return err
	}

	for key, vals := range rr.headers {
		for _, val := range vals {
			rr.w.Header().Add(key, val)
		}
	}

	rr.w.Header().Set("Content-Type", doer.contentType)
	rr.w.WriteHeader(rr.code)
	if _, err := b.WriteTo(rr.w); err != nil {
		return err
	}

	return nil
}
