// Package tenant resolves which storefront account a request belongs to.
package tenant

import (
	"context"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/service"
)

// staticResolver scopes every request to the configured default account.
// It stands in until an authenticated account model exists.
type staticResolver struct {
	accountID int64
}

// NewStaticResolver creates a resolver that always returns tenant.defaultAccountId
func NewStaticResolver(cfg *config.Config) service.TenantResolver {
	return &staticResolver{accountID: cfg.Tenant.DefaultAccountID}
}

func (r *staticResolver) ResolveAccountID(_ context.Context, _ *http.Request) (int64, error) {
	return r.accountID, nil
}
