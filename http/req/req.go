package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/xy-planning-network/switchback"
)

// A Parser decodes payloads in an HTTP request into application data.
type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in *http.Request.Body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// An empty body is a decode failure:
// ParseBody returns an ErrBadFormat wrapping the underlying [io.EOF].
//
// ParseBody reads the entire r.Body and can't be read from again.
// Use a [io.TeeReader] if r.Body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("switchback/http/req: %w: ParseBody called with non-pointer: %s", switchback.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("switchback/http/req: %w: failed decoding request body: %s", switchback.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("switchback/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParsePayload decodes the JSON data in *http.Request.Body into a generic document,
// a tree of maps, slices, strings, [json.Number], booleans and nil.
//
// Any valid JSON value can sit at the top level,
// so a body holding a bare array, string, number, boolean or null decodes too.
//
// Use ParsePayload when the shape of the payload is not known ahead of time;
// prefer ParseBody otherwise, which also runs validation rules.
//
// Numbers are decoded as [json.Number] so that
// encoding the document back to JSON reproduces the original text.
//
// An empty body is a decode failure:
// ParsePayload returns an ErrBadFormat wrapping the underlying [io.EOF].
func (p *Parser) ParsePayload(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("switchback/http/req: %w: failed decoding request body: %s", switchback.ErrBadFormat, err)
	}

	return doc, nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("switchback/http/req: failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("switchback/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
