package commands

import (
	"context"
	"log/slog"

	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

type LifecycleResult struct {
	Expired   int64
	Activated int64
	Promoted  int64
}

// AccessCodeLifecycle moves codes through inactive, active and expired, and keeps one
// primary code per customer and space.
type AccessCodeLifecycle interface {
	Run(ctx context.Context) (LifecycleResult, error)
}

type accessCodeLifecycleImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccessCodeLifecycle(uow shared.UnitOfWork, clock clock.Clock) AccessCodeLifecycle {
	return &accessCodeLifecycleImpl{uow: uow, clock: clock}
}

func (l *accessCodeLifecycleImpl) Run(ctx context.Context) (LifecycleResult, error) {
	now := l.clock.Now()

	var res LifecycleResult
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Expire first so a lapsed primary frees its slot before promotion.
		var err error
		if res.Expired, err = tx.Lifecycle().ExpireDue(ctx, now); err != nil {
			return err
		}
		if res.Activated, err = tx.Lifecycle().ActivateDue(ctx, now); err != nil {
			return err
		}
		res.Promoted, err = tx.Lifecycle().PromotePrimaries(ctx, now)
		return err
	})
	if err != nil {
		return LifecycleResult{}, shared.Internal(err)
	}

	slog.Info("access code lifecycle run",
		"expired", res.Expired, "activated", res.Activated, "promoted", res.Promoted)
	return res, nil
}
