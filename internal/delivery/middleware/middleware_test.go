package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := newTestLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	var seen string
	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		assert.Equal(t, seen, c.Request().Context().Value(deliverycontext.KeyRequestID))

		return nil
	})

	require.NoError(t, handler(c))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, c.Response().Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	logger, _ := newTestLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id-1")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-1", deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	logger, _ := newTestLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
	c := e.NewContext(req, httptest.NewRecorder())

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		return nil
	})

	require.NoError(t, handler(c))
	assert.Len(t, deliverycontext.GetRequestID(c), 36)
}

func TestAccessLogMiddleware_LogsRenderedStatus(t *testing.T) {
	logger, buf := newTestLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/product?pageSize=99", nil), rec)

	handler := NewAccessLogMiddleware(logger).Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=400")
	assert.Contains(t, out, `query="pageSize=99"`)
}

func TestAccessLogMiddleware_Success(t *testing.T) {
	logger, buf := newTestLogger()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	handler := NewAccessLogMiddleware(logger).Handle(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "status=200")
}
