package condb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4"
)

// RunQuery is the only path to a pooled connection. It acquires a connection
// for the given role, waiting at most the configured acquire timeout, and
// runs the statement inside a transaction with args bound positionally. When
// collect is non-nil the rows are handed to it and it owns them, including
// Close and Err. The transaction commits on success and is rolled back on
// any failure; the connection is released on every exit path.
func (p *Pools) RunQuery(ctx context.Context, role Role, query string, args []interface{}, collect func(rows pgx.Rows) error) error {
	pool, err := p.pool(role)
	if err != nil {
		return err
	}

	acquireCtx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}
	conn, err := pool.Acquire(acquireCtx)
	if err != nil {
		return fmt.Errorf("acquire %s connection: %w", role, err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin on %s: %w", role, err)
	}
	// No-op once Commit has succeeded.
	defer tx.Rollback(ctx)

	if collect != nil {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		if err := collect(rows); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
