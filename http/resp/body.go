package resp

import "fmt"

// An ErrorBody selects between the two JSON documents an error response can carry:
// a plain message wrapped in the standard error envelope,
// or a structured value used verbatim.
//
// Construct one with PlainMessage or StructuredBody;
// the zero value is rejected by Responder.ErrorJson.
type ErrorBody struct {
	doc   any
	valid bool
}

// errorSchema is the envelope a PlainMessage is wrapped in.
type errorSchema struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PlainMessage wraps msg in the standard error envelope:
//
//	{"status": "error", "message": msg}
func PlainMessage(msg string) ErrorBody {
	return ErrorBody{doc: errorSchema{Status: "error", Message: msg}, valid: true}
}

// StructuredBody uses v verbatim as the JSON document of the error response.
func StructuredBody(v any) ErrorBody {
	return ErrorBody{doc: v, valid: true}
}

// document unpacks the JSON document the ErrorBody carries.
func (eb ErrorBody) document() (any, error) {
	if !eb.valid {
		return nil, fmt.Errorf("%w: construct ErrorBody with PlainMessage or StructuredBody", ErrMissingData)
	}

	return eb.doc, nil
}
