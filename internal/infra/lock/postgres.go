package lock

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tryAdvisoryLock = `SELECT pg_try_advisory_lock(hashtextextended($1, 0))`
	advisoryUnlock  = `SELECT pg_advisory_unlock(hashtextextended($1, 0))`
)

// PostgresLocker holds session-level advisory locks, so every lease pins one pooled
// connection until it is released.
type PostgresLocker struct {
	pool         *pgxpool.Pool
	pollInterval time.Duration
}

func NewPostgresLocker(pool *pgxpool.Pool) *PostgresLocker {
	return &PostgresLocker{pool: pool, pollInterval: defaultPollInterval}
}

func (l *PostgresLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (shared.Lease, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "acquire connection for advisory lock")
	}

	err = poll(ctx, timeout, l.pollInterval, func(ctx context.Context) (bool, error) {
		var locked bool
		if err := conn.QueryRow(ctx, tryAdvisoryLock, key).Scan(&locked); err != nil {
			return false, errs.Wrap(err, "try advisory lock")
		}
		return locked, nil
	})
	if err != nil {
		conn.Release()
		return nil, err
	}

	return &postgresLease{conn: conn, key: key}, nil
}

type postgresLease struct {
	conn *pgxpool.Conn
	key  string
}

func (le *postgresLease) Release(ctx context.Context) error {
	if le.conn == nil {
		return nil
	}
	conn := le.conn
	le.conn = nil

	var unlocked bool
	err := conn.QueryRow(ctx, advisoryUnlock, le.key).Scan(&unlocked)
	if err != nil || !unlocked {
		// a session that may still hold the lock must not go back to the pool
		slog.Warn("advisory unlock failed, discarding connection",
			slog.String("key", le.key),
			slog.Any("error", err))
		_ = conn.Conn().Close(ctx)
		conn.Release()
		if err != nil {
			return errs.Wrap(err, "advisory unlock")
		}
		return errs.New("advisory lock was not held")
	}

	conn.Release()
	return nil
}
