package repository

import (
	"context"
	"time"

	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type LifecycleQueries interface {
	ActivateDueAccessCodes(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
	ExpireAccessCodes(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
	PromotePrimaryAccessCodes(ctx context.Context, db pgquery.DBTX, now pgtype.Timestamptz) (int64, error)
}

type LifecycleRepository struct {
	queries LifecycleQueries
	db      pgquery.DBTX
}

func NewLifecycleRepository(queries LifecycleQueries, db pgquery.DBTX) *LifecycleRepository {
	return &LifecycleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LifecycleRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ActivateDueAccessCodes(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to activate access codes", err)
	}
	return n, nil
}

func (r *LifecycleRepository) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpireAccessCodes(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire access codes", err)
	}
	return n, nil
}

func (r *LifecycleRepository) PromotePrimaries(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.PromotePrimaryAccessCodes(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to promote primary access codes", err)
	}
	return n, nil
}
