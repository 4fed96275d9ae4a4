package subscription

import (
	"errors"
	"time"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
)

var ErrInvalidPeriod = errors.New("subscription must end after it starts")

type Status string

const StatusActive Status = "active"

func (s Status) String() string {
	return string(s)
}

type Subscription struct {
	id               int64
	spaceID          int64
	customerID       int64
	productID        int64
	startsAt         time.Time
	endsAt           time.Time
	allowedWeekdays  []space.Weekday
	meetingRoomHours int
	durationDays     int
	status           Status
	createdAt        time.Time
}

// New creates an active subscription over [startsAt, endsAt] with the entitlement's
// weekday, meeting-room-hour and duration grants. The duration is the entitled span
// anchored at startsAt, which may be shorter than a window stretched over bookings.
func New(
	spaceID, customerID, productID int64,
	ent product.Entitlement,
	startsAt, endsAt time.Time,
	now time.Time,
) (*Subscription, error) {
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidPeriod
	}
	return &Subscription{
		spaceID:          spaceID,
		customerID:       customerID,
		productID:        productID,
		startsAt:         startsAt,
		endsAt:           endsAt,
		allowedWeekdays:  ent.AllowedWeekdays,
		meetingRoomHours: ent.MeetingRoomHours,
		durationDays:     ent.DurationDays(startsAt),
		status:           StatusActive,
		createdAt:        now,
	}, nil
}

func (s *Subscription) AssignID(id int64)                { s.id = id }
func (s *Subscription) ID() int64                        { return s.id }
func (s *Subscription) SpaceID() int64                   { return s.spaceID }
func (s *Subscription) CustomerID() int64                { return s.customerID }
func (s *Subscription) ProductID() int64                 { return s.productID }
func (s *Subscription) StartsAt() time.Time              { return s.startsAt }
func (s *Subscription) EndsAt() time.Time                { return s.endsAt }
func (s *Subscription) AllowedWeekdays() []space.Weekday { return s.allowedWeekdays }
func (s *Subscription) MeetingRoomHours() int            { return s.meetingRoomHours }
func (s *Subscription) DurationDays() int                { return s.durationDays }
func (s *Subscription) Status() Status                   { return s.status }
func (s *Subscription) CreatedAt() time.Time             { return s.createdAt }

// Credit is the meeting-room-hour allocation of a subscription.
type Credit struct {
	SubscriptionID int64
	CustomerID     int64
	HoursTotal     int
	HoursUsed      int
}

// Credit returns nil when the subscription carries no meeting room hours. Call it
// after the subscription has its id.
func (s *Subscription) Credit() *Credit {
	if s.meetingRoomHours <= 0 {
		return nil
	}
	return &Credit{
		SubscriptionID: s.id,
		CustomerID:     s.customerID,
		HoursTotal:     s.meetingRoomHours,
	}
}
