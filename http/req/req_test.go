package req_test

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback"
	"github.com/xy-planning-network/switchback/http/req"
)

func TestParserParseBody(t *testing.T) {
	// Arrange
	parser := req.NewParser()

	var actual req.ValidationErrors

	type test struct {
		A string `json:"a,omitempty" validate:"required"`
		B int64  `json:"b" validate:"gt=10,required"`
		C struct {
			Nested bool `json:"nested" validate:"eq=true"`
		} `json:"c"`
		D string `json:"-"`
	}
	var input, output test

	b := new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err := parser.ParseBody(b, struct{}{})

	// Assert
	require.ErrorIs(t, err, switchback.ErrBadAny)

	// Arrange
	b.Reset()
	b.WriteByte('\x00')

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.ErrorIs(t, err, switchback.ErrBadFormat)

	// Arrange
	b.Reset()

	// Act
	err = parser.ParseBody(b, &output)

	// Assert empty bodies fail decoding.
	require.ErrorIs(t, err, switchback.ErrBadFormat)

	// Arrange
	expected := req.ValidationErrors{
		req.ValidationError{
			Field: "a",
			Got:   "",
			Rule:  "required; string",
		},
		req.ValidationError{
			Field: "b",
			Got:   int64(0),
			Rule:  "gt=10; int64",
		},
		req.ValidationError{
			Field: "c.nested",
			Got:   false,
			Rule:  "eq=true; bool",
		},
	}

	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.ErrorIs(t, err, switchback.ErrNotValid)
	require.Equal(t, input, output)
	require.ErrorAs(t, err, &actual)
	require.Len(t, actual, 3)
	require.Equal(t, expected[0], actual[0])
	require.Equal(t, expected[1], actual[1])
	require.Equal(t, expected[2], actual[2])

	// Arrange
	input.A = "töst"
	input.B = 20
	input.C.Nested = true
	input.D = "ignore"

	b = new(bytes.Buffer)
	require.Nil(t, json.NewEncoder(b).Encode(input))

	// Act
	err = parser.ParseBody(b, &output)

	// Assert
	require.Nil(t, err)
	require.Equal(t, input.A, output.A)
	require.Equal(t, input.B, output.B)
	require.Equal(t, input.C, output.C)
	require.Equal(t, "", output.D)
}

func TestParserParsePayload(t *testing.T) {
	// Arrange
	parser := req.NewParser()

	// Act
	doc, err := parser.ParsePayload(strings.NewReader(""))

	// Assert empty bodies fail decoding.
	require.ErrorIs(t, err, switchback.ErrBadFormat)
	require.Nil(t, doc)

	// Act
	doc, err = parser.ParsePayload(strings.NewReader(`{"a":`))

	// Assert
	require.ErrorIs(t, err, switchback.ErrBadFormat)
	require.Nil(t, doc)

	// Act
	doc, err = parser.ParsePayload(strings.NewReader(`{"value":"töst","count":3,"ok":true,"none":null}`))

	// Assert
	require.Nil(t, err)
	require.Equal(t, map[string]any{
		"value": "töst",
		"count": json.Number("3"),
		"ok":    true,
		"none":  nil,
	}, doc)

	// Assert encoding the document reproduces the original number text.
	out, err := json.Marshal(doc)
	require.Nil(t, err)
	require.Contains(t, string(out), `"count":3`)
	require.Contains(t, string(out), `"value":"töst"`)

	// Act on a body whose top-level value is an array, not an object.
	doc, err = parser.ParsePayload(strings.NewReader(`[1,2,"töst"]`))

	// Assert
	require.Nil(t, err)
	require.Equal(t, []any{json.Number("1"), json.Number("2"), "töst"}, doc)

	// Act on bodies holding bare scalars and null.
	tcs := []struct {
		body     string
		expected any
	}{
		{`"töst"`, "töst"},
		{`12.5`, json.Number("12.5")},
		{`true`, true},
		{`null`, nil},
	}

	for _, tc := range tcs {
		doc, err = parser.ParsePayload(strings.NewReader(tc.body))

		// Assert
		require.Nil(t, err)
		require.Equal(t, tc.expected, doc)
	}
}

func TestParserParseQueryParams(t *testing.T) {
	// Arrange
	parser := req.NewParser()
	u := make(url.Values)

	// Act
	err := parser.ParseQueryParams(u, struct{}{})

	// Assert
	require.ErrorIs(t, err, switchback.ErrBadAny)

	// Arrange
	type test struct {
		A string `schema:"a" validate:"required"`
		B int64  `schema:"b"`
	}
	var output test

	u.Set("b", "nonsense")

	// Act
	err = parser.ParseQueryParams(u, &output)

	// Assert
	var actual req.ValidationErrors
	require.ErrorIs(t, err, switchback.ErrNotValid)
	require.ErrorAs(t, err, &actual)
	require.Equal(t, "b", actual[0].Field)

	// Arrange
	u.Set("a", "hello")
	u.Set("b", "42")

	// Act
	err = parser.ParseQueryParams(u, &output)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "hello", output.A)
	require.Equal(t, int64(42), output.B)
}
