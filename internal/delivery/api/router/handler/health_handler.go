package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the unversioned liveness check.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": response.Timestamp(time.Now()),
	})
}

// APIHealthCheck reports the versioned API as up, inside the standard envelope.
func APIHealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, nil)
}
