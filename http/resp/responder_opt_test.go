package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback/http/resp"
)

func TestWithContentType(t *testing.T) {
	tcs := []struct {
		name     string
		ct       string
		expected string
	}{
		{"Default", "", resp.DefaultContentType},
		{"With-Charset", "application/json; charset=UTF-8", "application/json; charset=UTF-8"},
		{"Vendor-Type", "application/vnd.api+json", "application/vnd.api+json"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			w := httptest.NewRecorder()
			d := resp.NewResponder(resp.WithLogger(newLogger()), resp.WithContentType(tc.ct))

			// Act
			err := d.Json(w, r, resp.Data(map[string]bool{"ok": true}))

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, w.Header().Get("Content-Type"))
		})
	}
}

func TestWithLogger(t *testing.T) {
	// Arrange
	l := newLogger()

	// Act
	d := resp.NewResponder(resp.WithLogger(l))
	err := d.Json(
		httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "http://example.com", nil),
		resp.Data(make(chan int)),
	)

	// Assert the configured logger received the failure.
	require.NotNil(t, err)
	require.NotZero(t, l.b.Len())
}
