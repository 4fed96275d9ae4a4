//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	b := booking.New(1, 2, 3, date, slot(9), now)

	assert.Equal(t, booking.StatusActive, b.Status())
	assert.Equal(t, int64(2), b.MeetingRoomID())
	assert.Equal(t, int64(3), b.SubscriptionID())
	assert.Equal(t, "09:00 - 10:00", b.Slot().String())
	assert.Zero(t, b.ID())

	b.AssignID(77)
	assert.Equal(t, int64(77), b.ID())
}

func TestState(t *testing.T) {
	assert.False(t, booking.StateValidated.IsTerminal())
	assert.False(t, booking.StateLocked.IsTerminal())
	assert.True(t, booking.StateCommitted.IsTerminal())
	assert.True(t, booking.StateRejected.IsTerminal())
	assert.True(t, booking.StateAborted.IsTerminal())
}
