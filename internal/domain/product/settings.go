package product

import (
	"encoding/json"
	"fmt"

	"coworking-booking/internal/domain/space"
)

// Settings is the seating-option specific configuration of a product. The set of
// implementations is closed to this package.
type Settings interface {
	SeatingOption() SeatingOption
	sealed()
}

type DayPassSettings struct {
	Duration     int          `json:"duration"`
	DurationType DurationType `json:"duration_type"`
	Persons      int          `json:"persons"`
	TimeStart    string       `json:"time_start"`
	TimeEnds     string       `json:"time_ends"`
}

// HotDeskSettings weekdays: an empty list grants the whole week.
type HotDeskSettings struct {
	Duration         int             `json:"duration"`
	DurationUnit     DurationUnit    `json:"duration_unit"`
	Weekdays         []space.Weekday `json:"weekdays"`
	Persons          int             `json:"persons"`
	MeetingRoomHours int             `json:"meeting_room_hours"`
}

type DedicatedDeskSettings struct {
	Duration         int             `json:"duration"`
	DurationUnit     DurationUnit    `json:"duration_unit"`
	Weekdays         []space.Weekday `json:"weekdays"`
	Persons          int             `json:"persons"`
	MeetingRoomHours int             `json:"meeting_room_hours"`
}

// MeetingRoomSettings duration and weekdays describe the subscription window, not a
// single booking.
type MeetingRoomSettings struct {
	MeetingRoomID int64           `json:"meeting_room_id"`
	Weekdays      []space.Weekday `json:"weekdays"`
	Duration      int             `json:"duration"`
	DurationUnit  DurationUnit    `json:"duration_unit"`
}

type PrivateOfficeSettings struct {
	Capacity         int          `json:"capacity"`
	Duration         int          `json:"duration"`
	DurationUnit     DurationUnit `json:"duration_unit"`
	MeetingRoomHours int          `json:"meeting_room_hours"`
}

func (DayPassSettings) SeatingOption() SeatingOption       { return DayPass }
func (HotDeskSettings) SeatingOption() SeatingOption       { return HotDesk }
func (DedicatedDeskSettings) SeatingOption() SeatingOption { return DedicatedDesk }
func (MeetingRoomSettings) SeatingOption() SeatingOption   { return MeetingRoom }
func (PrivateOfficeSettings) SeatingOption() SeatingOption { return PrivateOffice }

func (DayPassSettings) sealed()       {}
func (HotDeskSettings) sealed()       {}
func (DedicatedDeskSettings) sealed() {}
func (MeetingRoomSettings) sealed()   {}
func (PrivateOfficeSettings) sealed() {}

// DecodeSettings turns stored JSON into the settings shape selected by option.
func DecodeSettings(option SeatingOption, raw []byte) (Settings, error) {
	var (
		s   Settings
		err error
	)
	switch option {
	case DayPass:
		s, err = decode[DayPassSettings](raw)
	case HotDesk:
		s, err = decode[HotDeskSettings](raw)
	case DedicatedDesk:
		s, err = decode[DedicatedDeskSettings](raw)
	case MeetingRoom:
		s, err = decode[MeetingRoomSettings](raw)
	case PrivateOffice:
		s, err = decode[PrivateOfficeSettings](raw)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSeatingOption, option)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s settings: %w", option, err)
	}
	return s, nil
}

func decode[T Settings](raw []byte) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(raw, &v)
	return v, err
}
