package middleware

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Timestamp string `json:"timestamp"`
}

func serveError(t *testing.T, exposeInternals bool, err error) (*httptest.ResponseRecorder, errorBody, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	m := NewErrorMiddleware(logger, exposeInternals)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/external/public/product/999", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, &logs
}

func TestHandleHTTPError_Validation(t *testing.T) {
	err := domainerrors.NewValidationError(
		domainerrors.FieldViolation{Path: "categoryIds", Message: "Must be a JSON array of numbers"},
		domainerrors.FieldViolation{Path: "pageSize", Message: "Number must be less than or equal to 36"},
	)

	rec, body, _ := serveError(t, false, errors.Wrap(err, "bind list query"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "Invalid input data.", body.Error.Message)
	assert.JSONEq(t, `[
		{"path":"categoryIds","message":"Must be a JSON array of numbers"},
		{"path":"pageSize","message":"Number must be less than or equal to 36"}
	]`, string(body.Error.Details))
	assert.NotEmpty(t, body.Timestamp)
}

func TestHandleHTTPError_NotFoundInProduction(t *testing.T) {
	rec, body, _ := serveError(t, false, domainerrors.ErrProductNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Product not found", body.Error.Message)
	assert.Empty(t, body.Error.Details)
}

func TestHandleHTTPError_OperationalWithoutStatusDefaultsTo500(t *testing.T) {
	err := domainerrors.NewBaseError("Out Of Stock", 0, "Sold out", true)

	rec, body, _ := serveError(t, false, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OUT_OF_STOCK", body.Error.Code)
	assert.Equal(t, "Sold out", body.Error.Message)
}

func TestHandleHTTPError_UnknownErrorInProduction(t *testing.T) {
	err := errors.Wrap(errors.New("dial tcp 10.0.0.5:1433: i/o timeout"), "failed to list products")

	rec, body, logs := serveError(t, false, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "Internal Server Error", body.Error.Message)
	assert.Empty(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, logs.String(), "10.0.0.5")
}

func TestHandleHTTPError_DatabaseErrorInProduction(t *testing.T) {
	err := domainerrors.NewDatabaseExecuteError("[functional].[spProductGet]", sql.ErrConnDone)

	rec, body, _ := serveError(t, false, errors.Wrap(err, "failed to find product by ID"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "DATABASE_ERROR", body.Error.Code)
	assert.Equal(t, "Internal Server Error", body.Error.Message)
	assert.NotContains(t, rec.Body.String(), "spProductGet")
}

func TestHandleHTTPError_UnknownErrorInDevelopment(t *testing.T) {
	err := errors.Wrap(errors.New("boom"), "failed to list products")

	rec, body, _ := serveError(t, true, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "failed to list products: boom", body.Error.Message)

	var details string
	require.NoError(t, json.Unmarshal(body.Error.Details, &details))
	assert.Contains(t, details, "boom")
	assert.Contains(t, details, "error_test.go")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body, _ := serveError(t, false, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Not Found", body.Error.Message)

	rec, body, _ = serveError(t, false, echo.NewHTTPError(http.StatusTooManyRequests))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Error.Code)
}

func TestHandleHTTPError_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), false)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestHandleHTTPError_UsesEnvelopeTimestamp(t *testing.T) {
	timeNow = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = time.Now })

	_, body, _ := serveError(t, false, domainerrors.ErrProductNotFound)

	assert.Equal(t, response.Timestamp(timeNow()), body.Timestamp)
}
