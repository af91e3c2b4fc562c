package tenant

import (
	"context"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_ReturnsConfiguredAccount(t *testing.T) {
	cfg := &config.Config{}
	cfg.Tenant.DefaultAccountID = 42

	resolver := NewStaticResolver(cfg)

	req := httptest.NewRequest("GET", "/api/v1/external/public/product", nil)
	accountID, err := resolver.ResolveAccountID(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
}
