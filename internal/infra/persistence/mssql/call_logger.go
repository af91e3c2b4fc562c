package mssql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/errors"

	"gorm.io/gorm/logger"
)

const defaultSlowCallThreshold = 200 * time.Millisecond

// callLogger routes gorm's logger interface, and the invoker's procedure traces, to slog.
type callLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newCallLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &callLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultSlowCallThreshold,
	}
}

func (l *callLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *callLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *callLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *callLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *callLogger) log(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < enabledAt || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "database", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace reports one stored-procedure call. fc returns the statement and the number of rows read.
func (l *callLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error:
		attrs := append(l.callAttrs(fc, elapsed), slog.String("error", err.Error()))
		level := slog.LevelError
		// The client went away; the call did not fail on its own.
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(ctx, level, "Stored procedure failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(l.callAttrs(fc, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow stored procedure", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Stored procedure", l.callAttrs(fc, elapsed)...)
	}
}

func (l *callLogger) callAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	statement, rows := fc()

	return []slog.Attr{
		slog.String("statement", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
