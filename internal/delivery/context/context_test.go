package context

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_EchoAndContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-0")))
	assert.Equal(t, "req-0", GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestLoggerOrDefault_TagsRunAndRequest(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	runID := uuid.New()

	ctx := WithRunID(WithRequestID(context.Background(), "req-9"), runID)
	GetLoggerOrDefault(ctx, fallback).Info("stage completed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, runID.String(), line["runID"])
	assert.Nil(t, GetLoggerOrDefault(ctx, nil))
}

func TestRunID(t *testing.T) {
	_, ok := GetRunID(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetRunID(WithRunID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestActor(t *testing.T) {
	_, ok := GetActor(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetActor(WithActor(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
