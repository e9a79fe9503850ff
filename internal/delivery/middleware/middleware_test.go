package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "keeps a valid id", incoming: "req-123", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces unprintable id", incoming: "bad\x01id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			assert.Equal(t, got, seenInContext)
		})
	}
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("logs failures with the final status", func(t *testing.T) {
		var buf bytes.Buffer
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/analytics/global-stats?x=1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/analytics/global-stats")

		handler := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{}).Handle(func(echo.Context) error {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":503`)
		assert.Contains(t, buf.String(), `"query":"x=1"`)
	})

	t.Run("logs success at info in debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/export/users", nil), rec)
		c.SetPath("/export/:kind")

		handler := NewLoggerMiddleware(newBufferLogger(&buf), cfg).Handle(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		require.NoError(t, handler(c))
		assert.Contains(t, buf.String(), `"level":"INFO"`)
		assert.Contains(t, buf.String(), `"bytes_out":2`)
	})

	t.Run("skips health checks", func(t *testing.T) {
		var buf bytes.Buffer
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
		c.SetPath("/health")

		handler := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{}).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Empty(t, buf.String())
	})
}
