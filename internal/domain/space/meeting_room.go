package space

import "time"

// RoomHours is a meeting room's daily window [From, To), the same every day.
type RoomHours struct {
	From time.Duration
	To   time.Duration
}

func (h RoomHours) IsOpen() bool {
	return h.From >= 0 && h.From < h.To
}

// Contains reports whether [start, end) lies inside the window.
func (h RoomHours) Contains(start, end time.Duration) bool {
	return h.IsOpen() && start >= h.From && end <= h.To && start < end
}

// MeetingRoom carries what the booking flow needs from a room.
type MeetingRoom struct {
	ID      int64
	SpaceID int64
	Name    string
	Hours   RoomHours
}
