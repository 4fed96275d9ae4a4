package commands

import (
	"context"
	"time"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

// parseFutureDate parses a YYYY-MM-DD date in loc and rejects days before today.
func parseFutureDate(s string, loc *time.Location, c clock.Clock) (time.Time, error) {
	date, err := time.ParseInLocation(shared.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, shared.ErrInvalidDateFormat.WithCause(err)
	}
	if date.Before(clock.Today(c, loc)) {
		return time.Time{}, shared.ErrInvalidDate
	}
	return date, nil
}

// loadSpaceProduct fetches a published product owned by spaceID.
func loadSpaceProduct(ctx context.Context, reads shared.CommandReads, spaceID, productID int64) (*product.Product, error) {
	p, err := reads.ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrProductNotFound
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	if !p.BelongsTo(spaceID) {
		return nil, shared.ErrProductForbidden
	}
	return p, nil
}

func interpret(p *product.Product) (product.Entitlement, error) {
	ent, err := product.Interpret(p.Settings())
	if err != nil {
		return product.Entitlement{}, shared.ErrInvalidProductSettings.WithCause(err).WithMessage(err.Error())
	}
	return ent, nil
}
