package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// TenantMiddleware resolves the storefront account once per request
type TenantMiddleware struct {
	resolver service.TenantResolver
}

// NewTenantMiddleware creates a new tenant middleware
func NewTenantMiddleware(resolver service.TenantResolver) *TenantMiddleware {
	return &TenantMiddleware{
		resolver: resolver,
	}
}

// Handle stores the resolved account id on the echo context
func (m *TenantMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountID, err := m.resolver.ResolveAccountID(c.Request().Context(), c.Request())
		if err != nil {
			return errors.Wrap(err, "failed to resolve account")
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}
