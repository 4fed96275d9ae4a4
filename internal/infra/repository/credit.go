package repository

import (
	"context"

	"coworking-booking/internal/domain/subscription"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
)

type CreditQueries interface {
	CreateMeetingRoomCredit(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateMeetingRoomCreditParams) error
}

type CreditRepository struct {
	queries CreditQueries
	db      pgquery.DBTX
}

func NewCreditRepository(queries CreditQueries, db pgquery.DBTX) *CreditRepository {
	return &CreditRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CreditRepository) Create(ctx context.Context, c subscription.Credit) error {
	err := r.queries.CreateMeetingRoomCredit(ctx, r.db, pgquery.CreateMeetingRoomCreditParams{
		SubscriptionID: c.SubscriptionID,
		CustomerID:     c.CustomerID,
		HoursTotal:     int32(c.HoursTotal),
		HoursUsed:      int32(c.HoursUsed),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create meeting room credit", err)
	}
	return nil
}
