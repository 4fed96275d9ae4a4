package booking

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"coworking-booking/internal/domain/space"
)

const SlotLength = time.Hour

var (
	ErrInvalidSlotFormat = errors.New(`slot must be "HH:MM - HH:MM", start on the hour and last exactly one hour`)
	ErrEmptySlots        = errors.New("at least one slot is required")
	ErrDuplicateSlot     = errors.New("duplicate slot")
	ErrOverlappingSlot   = errors.New("overlapping slots")
)

// Slot is a time-of-day interval [Start, End) on a booking date.
type Slot struct {
	Start time.Duration
	End   time.Duration
}

// ParseSlot accepts only hour-aligned one-hour slots such as "09:00 - 10:00".
func ParseSlot(s string) (Slot, error) {
	// fixed width: "HH:MM - HH:MM"
	if len(s) != 13 || s[2] != ':' || s[5:8] != " - " || s[10] != ':' {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, s)
	}
	start, okStart := clockValue(s[0:2], s[3:5])
	end, okEnd := clockValue(s[8:10], s[11:13])
	if !okStart || !okEnd {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, s)
	}

	slot := Slot{Start: start, End: end}
	if !slot.IsAligned() {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidSlotFormat, s)
	}
	return slot, nil
}

func clockValue(hh, mm string) (time.Duration, bool) {
	if !digits(hh) || !digits(mm) {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
	if d > 24*time.Hour {
		return 0, false
	}
	return d, true
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsAligned reports a one-hour slot starting on the hour.
func (s Slot) IsAligned() bool {
	return s.Start%time.Hour == 0 && s.End-s.Start == SlotLength
}

func (s Slot) Overlaps(o Slot) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Slot) String() string {
	return hhmm(s.Start) + " - " + hhmm(s.End)
}

func hhmm(d time.Duration) string {
	mins := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ParseSelection validates a client's slot list and returns it in chronological order.
func ParseSelection(raw []string) ([]Slot, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySlots
	}

	slots := make([]Slot, 0, len(raw))
	seen := make(map[Slot]struct{}, len(raw))
	for _, r := range raw {
		s, err := ParseSlot(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlot, s)
		}
		seen[s] = struct{}{}
		slots = append(slots, s)
	}

	sortSlots(slots)
	for i := 1; i < len(slots); i++ {
		if slots[i-1].Overlaps(slots[i]) {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlappingSlot, slots[i-1], slots[i])
		}
	}
	return slots, nil
}

// DaySlots partitions the room window into consecutive one-hour slots. The first slot
// starts at the first whole hour at or after From; a trailing partial hour is dropped.
func DaySlots(hours space.RoomHours) []Slot {
	if !hours.IsOpen() {
		return []Slot{}
	}
	start := hours.From
	if rem := start % time.Hour; rem != 0 {
		start += time.Hour - rem
	}

	var slots []Slot
	for ; start+SlotLength <= hours.To; start += SlotLength {
		slots = append(slots, Slot{Start: start, End: start + SlotLength})
	}
	if slots == nil {
		return []Slot{}
	}
	return slots
}

// FreeSlots returns the day slots that overlap none of booked.
func FreeSlots(hours space.RoomHours, booked []Slot) []Slot {
	free := []Slot{}
	for _, s := range DaySlots(hours) {
		if !overlapsAny(s, booked) {
			free = append(free, s)
		}
	}
	return free
}

// Taken returns the requested slots that overlap any booked slot.
func Taken(requested, booked []Slot) []Slot {
	var taken []Slot
	for _, s := range requested {
		if overlapsAny(s, booked) {
			taken = append(taken, s)
		}
	}
	return taken
}

func overlapsAny(s Slot, others []Slot) bool {
	for _, o := range others {
		if s.Overlaps(o) {
			return true
		}
	}
	return false
}

func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].End < slots[j].End
	})
}

func FormatSlots(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
