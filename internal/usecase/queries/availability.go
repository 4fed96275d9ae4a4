package queries

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

type AvailabilityReadStore interface {
	ProductByID(ctx context.Context, id int64) (*product.Product, error)
	MeetingRoomByID(ctx context.Context, id int64) (*space.MeetingRoom, error)
	ActiveBookedSlots(ctx context.Context, meetingRoomID int64, date time.Time) ([]booking.Slot, error)
}

type AvailabilityQueries interface {
	// AvailableSlots lists the free one-hour slots of a meeting room product on date
	// (YYYY-MM-DD), in chronological order.
	AvailableSlots(ctx context.Context, spaceID, productID int64, date string) ([]string, error)
}

type availabilityQueriesImpl struct {
	store    AvailabilityReadStore
	cache    shared.AvailabilityCache
	location *time.Location
	clock    clock.Clock
}

func NewAvailabilityQueries(
	store AvailabilityReadStore,
	cache shared.AvailabilityCache,
	settings shared.BookingSettings,
	clock clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		cache:    cache,
		location: settings.Location,
		clock:    clock,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, spaceID, productID int64, date string) ([]string, error) {
	day, err := time.ParseInLocation(shared.DateLayout, date, q.location)
	if err != nil {
		return nil, shared.ErrInvalidDateFormat.WithCause(err)
	}
	if day.Before(clock.Today(q.clock, q.location)) {
		return nil, shared.ErrInvalidDate
	}

	p, err := q.store.ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrProductNotFound
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	if !p.BelongsTo(spaceID) {
		return nil, shared.ErrProductNotFound
	}
	if !p.IsMeetingRoom() {
		return nil, shared.ErrWrongProductType.WithMessage("product is not a meeting room")
	}
	ent, err := product.Interpret(p.Settings())
	if err != nil {
		return nil, shared.ErrInvalidProductSettings.WithCause(err).WithMessage(err.Error())
	}
	if !ent.AllowsWeekday(space.WeekdayOf(day)) {
		return []string{}, nil
	}

	roomID := p.MeetingRoomID()
	if roomID == 0 {
		return []string{}, nil
	}
	room, err := q.store.MeetingRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []string{}, nil
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	if room.SpaceID != spaceID || !room.Hours.IsOpen() {
		return []string{}, nil
	}

	booked, err := q.bookedSlots(ctx, shared.AvailabilityKey{SpaceID: spaceID, MeetingRoomID: roomID, Date: day})
	if err != nil {
		return nil, err
	}
	return booking.FormatSlots(booking.FreeSlots(room.Hours, booked)), nil
}

// bookedSlots reads through the cache; cache failures fall back to the database.
// The fill is written under the generation observed before the database read, so it
// is dropped if a booking commits in between.
func (q *availabilityQueriesImpl) bookedSlots(ctx context.Context, key shared.AvailabilityKey) ([]booking.Slot, error) {
	snap, cacheErr := q.cache.Get(ctx, key)
	if cacheErr != nil {
		slog.Warn("availability cache read failed", "key", key.String(), "error", cacheErr)
	}
	if snap.Hit {
		return snap.Booked, nil
	}

	booked, err := q.store.ActiveBookedSlots(ctx, key.MeetingRoomID, key.Date)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	if cacheErr != nil {
		return booked, nil
	}
	if err := q.cache.Set(ctx, key, snap.Generation, booked); err != nil {
		slog.Warn("availability cache write failed", "key", key.String(), "error", err)
	}
	return booked, nil
}
