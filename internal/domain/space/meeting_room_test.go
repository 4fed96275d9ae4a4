//go:build unit

package space_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/space"

	"github.com/stretchr/testify/assert"
)

func TestRoomHours(t *testing.T) {
	h := space.RoomHours{From: 9 * time.Hour, To: 18 * time.Hour}

	assert.True(t, h.IsOpen())
	assert.True(t, h.Contains(9*time.Hour, 10*time.Hour))
	assert.True(t, h.Contains(17*time.Hour, 18*time.Hour))
	assert.False(t, h.Contains(8*time.Hour, 9*time.Hour))
	assert.False(t, h.Contains(17*time.Hour, 19*time.Hour))

	assert.False(t, space.RoomHours{}.IsOpen())
	assert.False(t, space.RoomHours{From: 18 * time.Hour, To: 9 * time.Hour}.IsOpen())
}
