//go:build unit || e2e

package builder

import (
	"time"

	"coworking-booking/internal/domain/space"
)

type MeetingRoomBuilder struct {
	ID      int64
	SpaceID int64
	Name    string
	From    time.Duration
	To      time.Duration
}

// NewMeetingRoomBuilder opens 09:00 to 17:00.
func NewMeetingRoomBuilder() *MeetingRoomBuilder {
	return &MeetingRoomBuilder{
		ID:      7,
		SpaceID: 1,
		Name:    "Board Room",
		From:    9 * time.Hour,
		To:      17 * time.Hour,
	}
}

func (b *MeetingRoomBuilder) With(mutate func(*MeetingRoomBuilder)) *MeetingRoomBuilder {
	mutate(b)
	return b
}

func (b *MeetingRoomBuilder) BuildDomain() *space.MeetingRoom {
	return &space.MeetingRoom{
		ID:      b.ID,
		SpaceID: b.SpaceID,
		Name:    b.Name,
		Hours:   space.RoomHours{From: b.From, To: b.To},
	}
}
