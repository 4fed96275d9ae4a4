package readstore

import (
	"context"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"
)

type BookingReadQueries interface {
	GetProduct(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Product, error)
	GetMeetingRoom(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.MeetingRoom, error)
	ListActiveBookingSlots(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveBookingSlotsParams) ([]pgquery.ListActiveBookingSlotsRow, error)
}

// BookingReadStore serves the lookups of the booking and availability flows.
type BookingReadStore struct {
	queries BookingReadQueries
	db      pgquery.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db pgquery.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ProductByID(ctx context.Context, id int64) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	p, err := toProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored product is invalid", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *BookingReadStore) MeetingRoomByID(ctx context.Context, id int64) (*space.MeetingRoom, error) {
	row, err := r.queries.GetMeetingRoom(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meeting room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find meeting room by ID", err)
	}
	return toMeetingRoom(row), nil
}

func (r *BookingReadStore) ActiveBookedSlots(ctx context.Context, meetingRoomID int64, date time.Time) ([]booking.Slot, error) {
	rows, err := r.queries.ListActiveBookingSlots(ctx, r.db, pgquery.ListActiveBookingSlotsParams{
		MeetingRoomID: meetingRoomID,
		Date:          pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	slots := make([]booking.Slot, 0, len(rows))
	for _, row := range rows {
		start := pgconv.TimeOfDayPtrFromPgtype(row.SlotStart)
		end := pgconv.TimeOfDayPtrFromPgtype(row.SlotEnd)
		if start == nil || end == nil {
			continue
		}
		slots = append(slots, booking.Slot{Start: *start, End: *end})
	}
	return slots, nil
}
