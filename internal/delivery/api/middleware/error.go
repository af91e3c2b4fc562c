package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

const genericInternalMessage = "Internal Server Error"

var timeNow = time.Now

// ErrorMiddleware turns every error that reaches echo into the error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
	// exposeInternals adds raw messages and stack traces to responses; off in production.
	exposeInternals bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, exposeInternals bool) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:          logger,
		exposeInternals: exposeInternals,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.render(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = c.JSON(status, body)
}

func (m *ErrorMiddleware) render(err error, c echo.Context) (int, response.ErrorEnvelope) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, response.NewError(
			domainerrors.ValidationCode, validationErr.Message(), validationErr.Violations, timeNow())
	}

	name, status, message, operational := classify(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}

	var details any
	if m.exposeInternals {
		details = errors.Verbose(err)
	}

	if !operational {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		logger.LogAttrs(c.Request().Context(), slog.LevelError, "Unhandled error",
			slog.String("error", err.Error()),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)

		if m.exposeInternals {
			message = err.Error()
		} else {
			message = genericInternalMessage
		}
	}

	return status, response.NewError(domainerrors.Code(name), message, details, timeNow())
}

// classify reads the name, status, client message and operational flag off err.
func classify(err error) (string, int, string, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Name(), appErr.HTTPCode(), appErr.Message(), appErr.Operational()
	}

	// Echo's own failures: unknown route, wrong method, body too large, rate limited.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return http.StatusText(httpErr.Code), httpErr.Code, message, true
	}

	internal := domainerrors.ErrInternalError

	return internal.Name(), internal.HTTPCode(), internal.Message(), internal.Operational()
}
