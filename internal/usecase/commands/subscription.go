package commands

import (
	"context"
	"time"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/subscription"
	"coworking-booking/internal/usecase/shared"
)

// createSubscription persists the subscription and, when it grants meeting room hours,
// its credit row.
func createSubscription(
	ctx context.Context,
	tx shared.Tx,
	spaceID, customerID, productID int64,
	ent product.Entitlement,
	startsAt, endsAt, now time.Time,
) (*subscription.Subscription, error) {
	sub, err := subscription.New(spaceID, customerID, productID, ent, startsAt, endsAt, now)
	if err != nil {
		return nil, shared.ErrInvalidProductSettings.WithCause(err).WithMessage(err.Error())
	}

	id, err := tx.Subscriptions().Create(ctx, sub)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	sub.AssignID(id)

	if credit := sub.Credit(); credit != nil {
		if err := tx.Credits().Create(ctx, *credit); err != nil {
			return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
		}
	}
	return sub, nil
}
