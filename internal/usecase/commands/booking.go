package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/requestid"
	"coworking-booking/internal/usecase/shared"
)

const bookingConstraint = "uq_bookings_active_slot"

// BookingResult is returned on every path; State is the terminal state reached.
// AccessCode, Customer and Bookings are set only when State is committed.
type BookingResult struct {
	State      booking.State
	AccessCode *accesscode.AccessCode
	Customer   *customer.Customer
	Bookings   []*booking.Booking
}

type MeetingRoomBookingCommands interface {
	Book(ctx context.Context, spaceID int64, req reqdto.CreateMeetingRoomBookingRequest) (*BookingResult, error)
}

type meetingRoomBookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	locker   shared.Locker
	cache    shared.AvailabilityCache
	resolver CustomerResolver
	issuer   AccessCodeIssuer
	settings shared.BookingSettings
	clock    clock.Clock
}

func NewMeetingRoomBookingUseCase(
	uow shared.UnitOfWork,
	locker shared.Locker,
	cache shared.AvailabilityCache,
	resolver CustomerResolver,
	issuer AccessCodeIssuer,
	settings shared.BookingSettings,
	clock clock.Clock,
) MeetingRoomBookingCommands {
	return &meetingRoomBookingUseCaseImpl{
		uow:      uow,
		locker:   locker,
		cache:    cache,
		resolver: resolver,
		issuer:   issuer,
		settings: settings,
		clock:    clock,
	}
}

// validatedBooking is everything the locked section needs, checked up front.
type validatedBooking struct {
	product     *product.Product
	entitlement product.Entitlement
	room        *space.MeetingRoom
	date        time.Time
	slots       []booking.Slot
	contact     customer.Contact
}

func (m *meetingRoomBookingUseCaseImpl) Book(
	ctx context.Context,
	spaceID int64,
	req reqdto.CreateMeetingRoomBookingRequest,
) (*BookingResult, error) {
	log := slog.With("request_id", requestid.From(ctx), "space_id", spaceID, "product_id", req.ProductID)

	v, err := m.validate(ctx, spaceID, req)
	if err != nil {
		log.Debug("booking rejected", "state", booking.StateRejected, "error", err)
		return &BookingResult{State: booking.StateRejected}, err
	}
	log.Debug("booking validated", "state", booking.StateValidated, "meeting_room_id", v.room.ID)

	result, err := m.lockAndCommit(ctx, log, spaceID, v)
	if err != nil {
		log.Debug("booking aborted", "state", booking.StateAborted, "error", err)
		return &BookingResult{State: booking.StateAborted}, err
	}
	log.Debug("booking committed", "state", booking.StateCommitted, "access_code_id", result.AccessCode.ID())

	key := shared.AvailabilityKey{SpaceID: spaceID, MeetingRoomID: v.room.ID, Date: v.date}
	if err := m.cache.Invalidate(context.WithoutCancel(ctx), key); err != nil {
		log.Warn("failed to invalidate availability cache", "key", key.String(), "error", err)
	}
	return result, nil
}

func (m *meetingRoomBookingUseCaseImpl) validate(
	ctx context.Context,
	spaceID int64,
	req reqdto.CreateMeetingRoomBookingRequest,
) (*validatedBooking, error) {
	reads := m.uow.CommandReads()

	p, err := loadSpaceProduct(ctx, reads, spaceID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsMeetingRoom() {
		return nil, shared.ErrWrongProductType.WithMessage("product is not a meeting room")
	}
	if !p.IsPublished() {
		return nil, shared.ErrProductNotPublished
	}

	date, err := parseFutureDate(req.Date, m.settings.Location, m.clock)
	if err != nil {
		return nil, err
	}

	slots, err := booking.ParseSelection(req.SelectedSlots)
	if err != nil {
		return nil, slotError(err)
	}

	ent, err := interpret(p)
	if err != nil {
		return nil, err
	}
	if !ent.AllowsWeekday(space.WeekdayOf(date)) {
		return nil, shared.ErrWeekdayNotAllowed.WithMessage("product cannot be booked on " + date.Weekday().String())
	}

	room, err := m.loadRoom(ctx, reads, spaceID, ent.MeetingRoomID)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		if !room.Hours.Contains(s.Start, s.End) {
			return nil, shared.ErrSlotOutsideHours.WithMessage("slot " + s.String() + " is outside the meeting room hours")
		}
	}

	contact, err := contactFromRequest(req.Customer)
	if err != nil {
		return nil, err
	}

	return &validatedBooking{
		product:     p,
		entitlement: ent,
		room:        room,
		date:        date,
		slots:       slots,
		contact:     contact,
	}, nil
}

func (m *meetingRoomBookingUseCaseImpl) loadRoom(
	ctx context.Context,
	reads shared.CommandReads,
	spaceID, roomID int64,
) (*space.MeetingRoom, error) {
	if roomID == 0 {
		return nil, shared.ErrMeetingRoomNotFound
	}
	room, err := reads.MeetingRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrMeetingRoomNotFound
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	if room.SpaceID != spaceID {
		return nil, shared.ErrProductForbidden.WithMessage("meeting room belongs to another space")
	}
	return room, nil
}

func (m *meetingRoomBookingUseCaseImpl) lockAndCommit(
	ctx context.Context,
	log *slog.Logger,
	spaceID int64,
	v *validatedBooking,
) (*BookingResult, error) {
	lease, err := m.locker.Acquire(ctx, shared.MeetingRoomLockKey(v.room.ID, v.date), m.settings.LockTimeout)
	if err != nil {
		if errors.Is(err, shared.ErrLockTimeout) ||
			errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, shared.ErrLockBusy.WithCause(err)
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err).WithMessage("failed to acquire meeting room lock")
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			log.Warn("failed to release meeting room lock", "meeting_room_id", v.room.ID, "error", err)
		}
	}()
	log.Debug("booking locked", "state", booking.StateLocked)

	var (
		result   BookingResult
		attempts issuedCodes
	)
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booked, err := tx.Reads().ActiveBookedSlots(ctx, v.room.ID, v.date)
		if err != nil {
			return shared.ErrDatabaseOperationFailed.WithCause(err)
		}
		if taken := booking.Taken(v.slots, booked); len(taken) > 0 {
			return shared.ErrSlotNoLongerAvailable
		}

		cust, err := m.resolver.Resolve(ctx, tx, spaceID, v.contact)
		if err != nil {
			return err
		}

		validFrom, validTo := m.window(v)
		now := m.clock.Now()
		sub, err := createSubscription(ctx, tx, spaceID, cust.ID(), v.product.ID(), v.entitlement, validFrom, validTo, now)
		if err != nil {
			return err
		}

		bookings := make([]*booking.Booking, 0, len(v.slots))
		for _, s := range v.slots {
			b := booking.New(spaceID, v.room.ID, sub.ID(), v.date, s, now)
			id, err := tx.Bookings().Create(ctx, b)
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == bookingConstraint {
					return shared.ErrSlotNoLongerAvailable.WithCause(err)
				}
				return shared.ErrDatabaseOperationFailed.WithCause(err)
			}
			b.AssignID(id)
			bookings = append(bookings, b)
		}

		subID := sub.ID()
		code, err := m.issuer.Issue(ctx, tx, IssueParams{
			CustomerID:     cust.ID(),
			SpaceID:        spaceID,
			SubscriptionID: &subID,
			ValidFrom:      validFrom,
			ValidTo:        validTo,
		})
		if err != nil {
			return err
		}
		attempts.add(code)

		result = BookingResult{
			State:      booking.StateCommitted,
			AccessCode: code,
			Customer:   cust,
			Bookings:   bookings,
		}
		return nil
	})
	if err != nil {
		attempts.settle(ctx, m.issuer, nil)
		return nil, shared.Internal(err)
	}
	attempts.settle(ctx, m.issuer, result.AccessCode)
	return &result, nil
}

// window anchors the entitlement at the first slot and stretches it over the last one.
func (m *meetingRoomBookingUseCaseImpl) window(v *validatedBooking) (time.Time, time.Time) {
	loc := m.settings.Location
	first, last := v.slots[0], v.slots[len(v.slots)-1]

	validFrom, validTo := v.entitlement.Window(clock.At(v.date, first.Start, loc))
	if end := clock.At(v.date, last.End, loc); validTo.Before(end) {
		validTo = end
	}
	return validFrom, validTo
}

func slotError(err error) error {
	switch {
	case errors.Is(err, booking.ErrEmptySlots):
		return shared.ErrEmptySlots
	case errors.Is(err, booking.ErrDuplicateSlot):
		return shared.ErrDuplicateSlot.WithCause(err).WithMessage(err.Error())
	case errors.Is(err, booking.ErrOverlappingSlot):
		return shared.ErrOverlappingSlot.WithCause(err).WithMessage(err.Error())
	default:
		return shared.ErrInvalidSlotFormat.WithCause(err)
	}
}
