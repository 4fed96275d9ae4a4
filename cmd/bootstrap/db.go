package bootstrap

import (
	"context"
	"log/slog"

	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails the fx graph before the server listens.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			stat := pool.Stat()
			slog.Info("database connected",
				"host", cfg.DB.Host,
				"database", cfg.DB.DBName,
				"max_conns", stat.MaxConns())
			return nil
		},
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
