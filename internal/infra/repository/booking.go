package repository

import (
	"context"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports a taken slot as KindDuplicateKey on uq_bookings_active_slot.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, r.db, pgquery.CreateBookingParams{
		SpaceID:        b.SpaceID(),
		MeetingRoomID:  b.MeetingRoomID(),
		SubscriptionID: b.SubscriptionID(),
		Date:           pgconv.DateToPgtype(b.Date()),
		SlotStart:      pgconv.TimeOfDayToPgtype(b.Slot().Start),
		SlotEnd:        pgconv.TimeOfDayToPgtype(b.Slot().End),
		Status:         b.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
