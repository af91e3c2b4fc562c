package service

import (
	"context"
	"net/http"
)

// TenantResolver decides which storefront account a request is scoped to.
type TenantResolver interface {
	ResolveAccountID(ctx context.Context, req *http.Request) (int64, error)
}
