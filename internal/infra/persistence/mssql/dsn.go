package mssql

import (
	"net"
	"net/url"
	"strconv"

	"storefront/config"
)

const defaultPort = 1433

// BuildDSN renders the go-mssqldb URL form of the database settings.
func BuildDSN(cfg *config.DatabaseConfig) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	query := url.Values{}
	query.Set("database", cfg.Name)
	query.Set("encrypt", strconv.FormatBool(cfg.Encrypt))
	query.Set("TrustServerCertificate", strconv.FormatBool(cfg.TrustServerCertificate))
	if cfg.AppName != "" {
		query.Set("app name", cfg.AppName)
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		RawQuery: query.Encode(),
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}

	return u.String()
}
