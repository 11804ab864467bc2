package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/switchback/http/middleware"
	"github.com/xy-planning-network/switchback/logger"
)

func TestLogRequest(t *testing.T) {
	t.Run("Nil-Logger", func(t *testing.T) {
		// Arrange
		var called bool
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Act
		middleware.LogRequest(nil)(h).ServeHTTP(w, r)

		// Assert
		require.True(t, called)
	})

	t.Run("Scrubs-Password", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		ls := logger.New(logger.WithLogger(log.New(b, "", 0)))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "https://example.com/login?password=hunter2", nil)

		// Act
		middleware.LogRequest(ls)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Contains(t, b.String(), "POST /login")
		require.Contains(t, b.String(), "password=xxxxxxx")
		require.NotContains(t, b.String(), "hunter2")
	})

	t.Run("Includes-Request-ID", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)
		ls := logger.New(logger.WithLogger(log.New(b, "", 0)))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/widgets", nil)

		var id string
		capture := http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
			id, _ = rx.Context().Value(middleware.RequestIDCtxKey).(string)
		})

		// Act
		middleware.Chain(capture, middleware.RequestID(), middleware.LogRequest(ls)).ServeHTTP(w, r)

		// Assert
		require.NotZero(t, id)
		require.Contains(t, b.String(), id)
		require.Contains(t, b.String(), "GET /widgets")
	})
}
