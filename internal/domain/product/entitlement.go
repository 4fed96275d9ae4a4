package product

import (
	"errors"
	"fmt"
	"time"

	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/pkg/clock"
)

var (
	ErrInvalidDuration         = errors.New("duration must be positive")
	ErrInvalidDailyWindow      = errors.New("day pass time_start must be before time_ends")
	ErrInvalidMeetingRoomHours = errors.New("meeting room hours cannot be negative")
)

type Period struct {
	Amount int
	Unit   DurationUnit
}

// DayPassTerms replace Period for day passes.
type DayPassTerms struct {
	Type  DurationType
	Days  int
	Start time.Duration
	End   time.Duration
}

// Entitlement is the normalized meaning of a product's settings.
type Entitlement struct {
	Option           SeatingOption
	Period           Period
	DayPass          *DayPassTerms
	MeetingRoomHours int
	AllowedWeekdays  []space.Weekday
	MeetingRoomID    int64
}

func Interpret(s Settings) (Entitlement, error) {
	switch v := s.(type) {
	case DayPassSettings:
		return interpretDayPass(v)
	case HotDeskSettings:
		return periodEntitlement(HotDesk, v.Duration, v.DurationUnit, v.Weekdays, v.MeetingRoomHours, 0)
	case DedicatedDeskSettings:
		return periodEntitlement(DedicatedDesk, v.Duration, v.DurationUnit, v.Weekdays, v.MeetingRoomHours, 0)
	case MeetingRoomSettings:
		return periodEntitlement(MeetingRoom, v.Duration, v.DurationUnit, v.Weekdays, 0, v.MeetingRoomID)
	case PrivateOfficeSettings:
		return periodEntitlement(PrivateOffice, v.Duration, v.DurationUnit, nil, v.MeetingRoomHours, 0)
	default:
		return Entitlement{}, fmt.Errorf("%w: %T", ErrUnsupportedSeatingOption, s)
	}
}

func interpretDayPass(v DayPassSettings) (Entitlement, error) {
	if !v.DurationType.IsValid() {
		return Entitlement{}, ErrInvalidDurationType
	}
	start, err := clock.ParseTimeOfDay(v.TimeStart)
	if err != nil {
		return Entitlement{}, err
	}
	end, err := clock.ParseTimeOfDay(v.TimeEnds)
	if err != nil {
		return Entitlement{}, err
	}
	if start >= end {
		return Entitlement{}, ErrInvalidDailyWindow
	}

	days := 1
	if v.DurationType == FullDays {
		if v.Duration <= 0 {
			return Entitlement{}, ErrInvalidDuration
		}
		days = v.Duration
	}

	return Entitlement{
		Option:          DayPass,
		DayPass:         &DayPassTerms{Type: v.DurationType, Days: days, Start: start, End: end},
		AllowedWeekdays: space.AllWeekdays(),
	}, nil
}

func periodEntitlement(
	option SeatingOption,
	amount int,
	unit DurationUnit,
	weekdays []space.Weekday,
	roomHours int,
	roomID int64,
) (Entitlement, error) {
	if amount <= 0 {
		return Entitlement{}, ErrInvalidDuration
	}
	if !unit.IsValid() {
		return Entitlement{}, ErrInvalidDurationUnit
	}
	if roomHours < 0 {
		return Entitlement{}, ErrInvalidMeetingRoomHours
	}
	allowed, err := normalizeWeekdays(weekdays)
	if err != nil {
		return Entitlement{}, err
	}

	return Entitlement{
		Option:           option,
		Period:           Period{Amount: amount, Unit: unit},
		MeetingRoomHours: roomHours,
		AllowedWeekdays:  allowed,
		MeetingRoomID:    roomID,
	}, nil
}

// normalizeWeekdays expands an empty list to the whole week and drops repeats.
func normalizeWeekdays(in []space.Weekday) ([]space.Weekday, error) {
	if len(in) == 0 {
		return space.AllWeekdays(), nil
	}
	var seen [8]bool
	out := make([]space.Weekday, 0, len(in))
	for _, w := range in {
		if !w.IsValid() {
			return nil, space.ErrInvalidWeekday
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out, nil
}

// Window returns the inclusive validity window starting at anchor, in anchor's location.
func (e Entitlement) Window(anchor time.Time) (validFrom, validTo time.Time) {
	loc := anchor.Location()

	if e.DayPass != nil {
		validFrom = clock.At(anchor, e.DayPass.Start, loc)
		last := anchor.AddDate(0, 0, e.DayPass.Days-1)
		return validFrom, clock.At(last, e.DayPass.End, loc)
	}

	n := e.Period.Amount
	if e.Period.Unit == Hours {
		return anchor, anchor.Add(time.Duration(n) * time.Hour)
	}

	start := clock.StartOfDay(anchor, loc)
	var next time.Time
	switch e.Period.Unit {
	case Days:
		next = start.AddDate(0, 0, n)
	case Months:
		next = start.AddDate(0, n, 0)
	case Years:
		next = start.AddDate(n, 0, 0)
	default:
		next = start.AddDate(0, 0, 1)
	}
	return start, next.Add(-time.Second)
}

// DurationDays counts the calendar days touched by the window anchored at anchor.
func (e Entitlement) DurationDays(anchor time.Time) int {
	from, to := e.Window(anchor)
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a)/(24*time.Hour)) + 1
}

// AllowsWeekday reports whether access is granted on w.
func (e Entitlement) AllowsWeekday(w space.Weekday) bool {
	for _, a := range e.AllowedWeekdays {
		if a == w {
			return true
		}
	}
	return false
}
