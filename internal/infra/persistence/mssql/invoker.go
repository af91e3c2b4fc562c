package mssql

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"gorm.io/gorm"
)

// Cardinality is the result shape a caller expects from a procedure.
type Cardinality int

const (
	// ExpectNone executes the procedure and reads no rows.
	ExpectNone Cardinality = iota
	// ExpectSingle reads the first row of the first result set.
	ExpectSingle
	// ExpectMulti reads every result set in order.
	ExpectMulti
)

// Params are named procedure inputs. A nil value is sent as NULL.
type Params map[string]any

// namedArgs binds params in name order so the call is deterministic.
func (p Params) namedArgs() []any {
	names := slices.Sorted(maps.Keys(p))

	args := make([]any, 0, len(names))
	for _, name := range names {
		args = append(args, sql.Named(name, p[name]))
	}

	return args
}

// RowSet receives the rows of one result set.
type RowSet interface {
	scan(db *gorm.DB, rows *sql.Rows, limit int) (int64, error)
}

type sliceSet[T any] struct {
	dest *[]T
}

// Into collects a result set into dest, one element per row, matching columns by gorm column name.
func Into[T any](dest *[]T) RowSet {
	return sliceSet[T]{dest: dest}
}

func (s sliceSet[T]) scan(db *gorm.DB, rows *sql.Rows, limit int) (int64, error) {
	var n int64
	for (limit <= 0 || n < int64(limit)) && rows.Next() {
		var row T
		if err := db.ScanRows(rows, &row); err != nil {
			return n, err
		}
		*s.dest = append(*s.dest, row)
		n++
	}

	return n, nil
}

// Invoker calls stored procedures on the pool.
type Invoker struct {
	pool        *Pool
	callTimeout time.Duration
}

// NewInvoker creates a stored-procedure invoker. A zero callTimeout disables the per-call deadline.
func NewInvoker(pool *Pool, callTimeout time.Duration) *Invoker {
	return &Invoker{pool: pool, callTimeout: callTimeout}
}

// NewInvokerFromConfig adapts NewInvoker for the fx graph.
func NewInvokerFromConfig(pool *Pool, cfg *config.Config) *Invoker {
	return NewInvoker(pool, cfg.Database.ProcedureTimeout())
}

// Invoke executes procedure with params. For ExpectSingle only sets[0] is filled, with at most one
// row; for ExpectMulti result set i is collected into sets[i] and sets beyond len(sets) are drained.
// It returns the number of result sets the procedure produced. Failures are returned as
// *domainerrors.DatabaseExecuteError, or *domainerrors.ConnectionError when the pool is unreachable.
func (i *Invoker) Invoke(ctx context.Context, procedure string, params Params, expect Cardinality, sets ...RowSet) (int, error) {
	db, err := i.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(procedure, err)
	}

	if i.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.callTimeout)
		defer cancel()
	}

	begin := time.Now()
	var rowsRead int64

	count, err := i.run(ctx, db, sqlDB, procedure, params.namedArgs(), expect, sets, &rowsRead)

	db.Logger.Trace(ctx, begin, func() (string, int64) {
		return "EXEC " + procedure, rowsRead
	}, err)

	if err != nil {
		return count, domainerrors.NewDatabaseExecuteError(procedure, err)
	}

	return count, nil
}

func (i *Invoker) run(
	ctx context.Context,
	db *gorm.DB,
	sqlDB *sql.DB,
	procedure string,
	args []any,
	expect Cardinality,
	sets []RowSet,
	rowsRead *int64,
) (int, error) {
	if expect == ExpectNone {
		res, err := sqlDB.ExecContext(ctx, procedure, args...)
		if err != nil {
			return 0, err
		}
		if affected, err := res.RowsAffected(); err == nil {
			*rowsRead = affected
		}

		return 0, nil
	}

	rows, err := sqlDB.QueryContext(ctx, procedure, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	limit := 0
	if expect == ExpectSingle {
		limit = 1
	}

	count := 0
	for {
		if count < len(sets) && (expect == ExpectMulti || count == 0) {
			n, err := sets[count].scan(db, rows, limit)
			*rowsRead += n
			if err != nil {
				return count, err
			}
		}

		// Whatever the caller did not ask for is skipped.
		for rows.Next() {
		}
		if err := rows.Err(); err != nil {
			return count, err
		}

		count++

		if !rows.NextResultSet() {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return count, err
	}

	return count, nil
}
