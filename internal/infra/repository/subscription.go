package repository

import (
	"context"

	"coworking-booking/internal/domain/subscription"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"
)

type SubscriptionQueries interface {
	CreateSubscription(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateSubscriptionParams) (int64, error)
}

type SubscriptionRepository struct {
	queries SubscriptionQueries
	db      pgquery.DBTX
}

func NewSubscriptionRepository(queries SubscriptionQueries, db pgquery.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) (int64, error) {
	weekdays := make([]int16, 0, len(s.AllowedWeekdays()))
	for _, w := range s.AllowedWeekdays() {
		weekdays = append(weekdays, int16(w.Int()))
	}

	id, err := r.queries.CreateSubscription(ctx, r.db, pgquery.CreateSubscriptionParams{
		SpaceID:          s.SpaceID(),
		CustomerID:       s.CustomerID(),
		ProductID:        s.ProductID(),
		StartsAt:         pgconv.TimeToPgtype(s.StartsAt()),
		EndsAt:           pgconv.TimeToPgtype(s.EndsAt()),
		AllowedWeekdays:  weekdays,
		MeetingRoomHours: int32(s.MeetingRoomHours()),
		DurationDays:     int32(s.DurationDays()),
		Status:           s.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(s.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}
