package shared

import (
	"context"
	"fmt"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

var ErrLockTimeout = errs.New("lock acquisition timed out")

// Locker grants exclusive leases on string keys.
type Locker interface {
	// Acquire waits up to timeout and fails with ErrLockTimeout when the key stays held.
	Acquire(ctx context.Context, key string, timeout time.Duration) (Lease, error)
}

type Lease interface {
	Release(ctx context.Context) error
}

func MeetingRoomLockKey(meetingRoomID int64, date time.Time) string {
	return fmt.Sprintf("meeting-room:%d:%s", meetingRoomID, date.Format(DateLayout))
}

type AvailabilityKey struct {
	SpaceID       int64
	MeetingRoomID int64
	Date          time.Time
}

func (k AvailabilityKey) String() string {
	return fmt.Sprintf("availability:%d:%d:%s", k.SpaceID, k.MeetingRoomID, k.Date.Format(DateLayout))
}

// AvailabilitySnapshot is one cache read. Generation names the cache state it observed.
type AvailabilitySnapshot struct {
	Booked     []booking.Slot
	Hit        bool
	Generation int64
}

// AvailabilityCache caches the active booked slots of a room on a date.
// Set stores under the generation a prior Get returned; Invalidate starts a new
// generation, so a value read from the database before it is never served after it.
type AvailabilityCache interface {
	Get(ctx context.Context, key AvailabilityKey) (AvailabilitySnapshot, error)
	Set(ctx context.Context, key AvailabilityKey, generation int64, booked []booking.Slot) error
	Invalidate(ctx context.Context, key AvailabilityKey) error
}

// QRStore persists QR artifacts for access codes.
type QRStore interface {
	DownloadURL(codeID string) string
	Save(ctx context.Context, codeID string) error
	// Remove deletes the artifact of a code that never committed; a missing artifact is not an error.
	Remove(ctx context.Context, codeID string) error
}

type CredentialHasher interface {
	RandomCredentialHash() (string, error)
}

// BookingSettings are the tunables of the booking flow.
type BookingSettings struct {
	Location    *time.Location
	LockTimeout time.Duration
}
