package mssql

import (
	"database/sql"
	"testing"
	"time"

	"storefront/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDatabaseConfig() *config.DatabaseConfig {
	cfg := &config.DatabaseConfig{
		Host: "localhost",
		Name: "storefront",
	}
	cfg.Pool.Max = 4
	cfg.Pool.IdleTimeout = 30 * time.Second

	return cfg
}

func mockDialector(db *sql.DB) DialectorFunc {
	return func() gorm.Dialector {
		return sqlserver.New(sqlserver.Config{Conn: db})
	}
}

// newMockPool returns a pool whose connections come from sqlmock with exact query matching.
func newMockPool(t *testing.T, cfg *config.DatabaseConfig) (*Pool, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPool(cfg, nil, logger.Discard, mockDialector(db)), mock
}
