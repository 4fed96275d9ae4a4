package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"coworking-booking/internal/infra/cache"
	"coworking-booking/internal/infra/lock"
	"coworking-booking/internal/infra/qr"
	"coworking-booking/internal/infra/scheduler"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// BookingInfraModule wires the lock, cache, QR storage and the lifecycle job.
var BookingInfraModule = fx.Module("booking-infra",
	fx.Provide(
		NewLocker,
		NewAvailabilityCache,
		NewQRStore,
		NewScheduler,
	),
	fx.Invoke(RegisterLifecycleJob),
)

const (
	lockBackendMemory   = "memory"
	lockBackendPostgres = "postgres"
	lockBackendRedis    = "redis"
)

func NewLocker(cfg config.Config, pool *pgxpool.Pool, client *redis.Client) (shared.Locker, error) {
	switch cfg.Booking.LockBackend {
	case lockBackendMemory, "":
		return lock.NewMemoryLocker(), nil
	case lockBackendPostgres:
		return lock.NewPostgresLocker(pool), nil
	case lockBackendRedis:
		if client == nil {
			return nil, fmt.Errorf("LOCK_BACKEND=redis requires REDIS_ADDR")
		}
		return lock.NewRedisLocker(client, cfg.Booking.LockTTL), nil
	default:
		return nil, fmt.Errorf("unknown LOCK_BACKEND %q", cfg.Booking.LockBackend)
	}
}

func NewAvailabilityCache(cfg config.Config, client *redis.Client) shared.AvailabilityCache {
	if client == nil || cfg.Booking.AvailabilityCacheTTL <= 0 {
		return cache.NoopAvailabilityCache{}
	}
	return cache.NewRedisAvailabilityCache(client, cfg.Booking.AvailabilityCacheTTL)
}

func NewQRStore(cfg config.Config) shared.QRStore {
	return qr.NewFileStore(cfg.QR.StorageDir, cfg.QR.PublicBaseURL, cfg.QR.Size)
}

func NewScheduler(lc fx.Lifecycle) *scheduler.Scheduler {
	s := scheduler.New()
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}

func RegisterLifecycleJob(s *scheduler.Scheduler, cfg config.Config, lifecycle commands.AccessCodeLifecycle) error {
	if cfg.Booking.LifecycleCron == "" {
		slog.Warn("access code lifecycle job disabled")
		return nil
	}
	return s.Register("access-code-lifecycle", cfg.Booking.LifecycleCron, func(ctx context.Context) error {
		_, err := lifecycle.Run(ctx)
		return err
	})
}
