package mssql

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// DialectorFunc builds the gorm dialector for a fresh connection pool.
type DialectorFunc func() gorm.Dialector

// Pool owns the process-wide SQL Server connection pool. It is opened on first
// Acquire and re-opened by the next Acquire after Close.
type Pool struct {
	mu      sync.Mutex
	db      *gorm.DB
	dial    DialectorFunc
	cfg     *config.DatabaseConfig
	gormLog logger.Interface
	logger  *slog.Logger
}

// PoolParams defines the required parameters
type PoolParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the pool and ties it to the application lifecycle. Start never fails on an
// unreachable database: the pool stays closed and the first Acquire retries.
func New(params PoolParams) *Pool {
	cfg := params.Config.Database
	pool := NewPool(cfg, params.Logger, newCallLogger(params.Logger, params.Config), func() gorm.Dialector {
		return sqlserver.Open(BuildDSN(cfg))
	})

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			pool.warmUp(ctx)
			go monitorDBPool(monitorCtx, params.Logger, pool, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancelMonitor()

			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return pool.Close(ctx)
		},
	})

	return pool
}

// NewPool creates a closed pool; nothing is dialled until Acquire.
func NewPool(cfg *config.DatabaseConfig, baseLogger *slog.Logger, gormLog logger.Interface, dial DialectorFunc) *Pool {
	if gormLog == nil {
		gormLog = logger.Discard
	}

	return &Pool{
		dial:    dial,
		cfg:     cfg,
		gormLog: gormLog,
		logger:  baseLogger,
	}
}

// Acquire returns the open pool, establishing it when needed. A pool that cannot
// be reached yields a *domainerrors.ConnectionError.
func (p *Pool) Acquire(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := gorm.Open(p.dial(), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 p.gormLog,
	})
	if err != nil {
		return nil, domainerrors.NewConnectionError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, domainerrors.NewConnectionError(err)
	}

	sqlDB.SetMaxOpenConns(p.cfg.Pool.Max)
	sqlDB.SetMaxIdleConns(p.cfg.Pool.Max)
	sqlDB.SetConnMaxIdleTime(p.cfg.Pool.IdleTimeout)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, domainerrors.NewConnectionError(err)
	}

	if p.logger != nil {
		p.logger.InfoContext(ctx, "Database pool established",
			slog.String("host", p.cfg.Host),
			slog.String("database", p.cfg.Name),
			slog.Int("maxConns", p.cfg.Pool.Max),
		)
	}

	p.db = db

	return db, nil
}

// Warm opens pool.min connections in parallel and returns them to the idle set.
func (p *Pool) Warm(ctx context.Context) error {
	if p.cfg.Pool.Min <= 0 {
		return nil
	}

	db, err := p.Acquire(ctx)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get SQL Server sql.DB")
	}

	conns := make([]*sql.Conn, p.cfg.Pool.Min)
	defer func() {
		for _, conn := range conns {
			if conn != nil {
				_ = conn.Close()
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i := range conns {
		g.Go(func() error {
			conn, err := sqlDB.Conn(gctx)
			if err != nil {
				return err
			}
			conns[i] = conn

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domainerrors.NewConnectionError(err)
	}

	return nil
}

// warmUp opens the pool and its minimum connections ahead of the first request.
// Failures are only logged.
func (p *Pool) warmUp(ctx context.Context) {
	if _, err := p.Acquire(ctx); err != nil {
		p.logWarmUpFailure(ctx, err)

		return
	}

	if err := p.Warm(ctx); err != nil {
		p.logWarmUpFailure(ctx, err)
	}
}

func (p *Pool) logWarmUpFailure(ctx context.Context, err error) {
	if p.logger == nil {
		return
	}

	p.logger.WarnContext(ctx, "Database unavailable at startup, connecting on first request",
		slog.String("host", p.cfg.Host),
		slog.String("database", p.cfg.Name),
		slog.Any("error", err),
	)
}

// stats reports the statistics of the open pool; ok is false while it is closed.
func (p *Pool) stats() (stats sql.DBStats, ok bool) {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()

	if db == nil {
		return sql.DBStats{}, false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return sql.DBStats{}, false
	}

	return sqlDB.Stats(), true
}

// Close closes the pool, giving up when ctx is done. The next Acquire re-opens it.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	db := p.db
	p.db = nil
	p.mu.Unlock()

	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get SQL Server sql.DB")
	}

	done := make(chan error, 1)
	go func() {
		done <- sqlDB.Close()
	}()

	select {
	case err := <-done:
		return errors.Wrap(err, "failed to close database pool")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "timed out closing database pool")
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, pool *Pool, interval time.Duration) {
	if logger == nil || pool == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var prev sql.DBStats
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur, ok := pool.stats()
			if !ok {
				prev = sql.DBStats{}

				continue
			}
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Database pool wait",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}
