package context

import (
	"github.com/labstack/echo/v4"
)

// KeyAccountID is the key for the storefront account a request is scoped to.
const KeyAccountID ContextKey = "account_id"

// SetAccountID stores the resolved account on the echo context.
func SetAccountID(c echo.Context, accountID int64) {
	c.Set(string(KeyAccountID), accountID)
}

// GetAccountID returns the account resolved for this request and whether one was resolved.
func GetAccountID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyAccountID)).(int64)

	return id, ok
}
