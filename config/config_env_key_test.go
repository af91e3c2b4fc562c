package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"trustServerCertificate": false,
			"pool": map[string]any{
				"idleTimeout": "30s",
			},
		},
		"tenant": map[string]any{
			"defaultAccountId": 1,
		},
		"http": map[string]any{
			"maxRequestBodySize": "10M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_TRUSTSERVERCERTIFICATE", want: "database.trustServerCertificate"},
		{envKey: "DATABASE_POOL_IDLETIMEOUT", want: "database.pool.idleTimeout"},
		{envKey: "TENANT_DEFAULTACCOUNTID", want: "tenant.defaultAccountId"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestOverrideKey_DropsUnknownSections(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"env": "development",
		},
		"database": map[string]any{
			"host": "localhost",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_HOST", want: "database.host"},
		{envKey: "ENV_ENV", want: "env.env"},
		{envKey: "ENV", want: ""},
		{envKey: "PATH", want: ""},
		{envKey: "HOME_DIR", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := overrideKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("overrideKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
