package booking

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCanceled:
		return true
	default:
		return false
	}
}

// State is the progress of one booking request.
type State string

const (
	StateValidated State = "validated"
	StateLocked    State = "locked"
	StateCommitted State = "committed"
	StateRejected  State = "rejected"
	StateAborted   State = "aborted"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	return s == StateCommitted || s == StateRejected || s == StateAborted
}

// Booking reserves one slot of a meeting room on a date for a subscription.
type Booking struct {
	id             int64
	spaceID        int64
	meetingRoomID  int64
	subscriptionID int64
	date           time.Time
	slot           Slot
	status         Status
	createdAt      time.Time
}

func New(spaceID, meetingRoomID, subscriptionID int64, date time.Time, slot Slot, now time.Time) *Booking {
	return &Booking{
		spaceID:        spaceID,
		meetingRoomID:  meetingRoomID,
		subscriptionID: subscriptionID,
		date:           date,
		slot:           slot,
		status:         StatusActive,
		createdAt:      now,
	}
}

func (b *Booking) AssignID(id int64)     { b.id = id }
func (b *Booking) ID() int64             { return b.id }
func (b *Booking) SpaceID() int64        { return b.spaceID }
func (b *Booking) MeetingRoomID() int64  { return b.meetingRoomID }
func (b *Booking) SubscriptionID() int64 { return b.subscriptionID }
func (b *Booking) Date() time.Time       { return b.date }
func (b *Booking) Slot() Slot            { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
