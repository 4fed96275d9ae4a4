package space

import (
	"errors"
	"time"
)

var (
	ErrHoursOnClosedDay = errors.New("open/close times must be empty when the day is closed or non-stop")
	ErrClosedAndNonStop = errors.New("a day cannot be both closed and non-stop")
	ErrMissingHours     = errors.New("open and close times are required for regular days")
	ErrInvalidHourRange = errors.New("open time must be before close time")
)

const day = 24 * time.Hour

// SpaceHour is one weekday row of a space's opening hours. Exactly one of closed,
// non-stop, or an open<close pair holds.
type SpaceHour struct {
	id        int64
	weekday   Weekday
	openTime  *time.Duration
	closeTime *time.Duration
	closed    bool
	nonStop   bool
	createdAt time.Time
	updatedAt time.Time
}

type SpaceHourParams struct {
	ID        int64
	Weekday   int
	OpenTime  *time.Duration
	CloseTime *time.Duration
	Closed    bool
	NonStop   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSpaceHour(p SpaceHourParams) (*SpaceHour, error) {
	weekday, err := NewWeekday(p.Weekday)
	if err != nil {
		return nil, err
	}

	switch {
	case p.Closed && p.NonStop:
		return nil, ErrClosedAndNonStop
	case p.Closed || p.NonStop:
		if p.OpenTime != nil || p.CloseTime != nil {
			return nil, ErrHoursOnClosedDay
		}
	default:
		if p.OpenTime == nil || p.CloseTime == nil {
			return nil, ErrMissingHours
		}
		if *p.OpenTime < 0 || *p.CloseTime > day || *p.OpenTime >= *p.CloseTime {
			return nil, ErrInvalidHourRange
		}
	}

	return &SpaceHour{
		id:        p.ID,
		weekday:   weekday,
		openTime:  p.OpenTime,
		closeTime: p.CloseTime,
		closed:    p.Closed,
		nonStop:   p.NonStop,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

// ClosedDay is the row reported for a weekday without stored hours.
func ClosedDay(weekday Weekday) *SpaceHour {
	return &SpaceHour{weekday: weekday, closed: true}
}

// FullWeek returns exactly seven rows ordered Monday..Sunday. Missing weekdays are
// closed; for duplicated weekdays the first row wins.
func FullWeek(hours []*SpaceHour) []*SpaceHour {
	byDay := make(map[Weekday]*SpaceHour, 7)
	for _, h := range hours {
		if _, seen := byDay[h.weekday]; !seen {
			byDay[h.weekday] = h
		}
	}

	week := make([]*SpaceHour, 0, 7)
	for _, w := range AllWeekdays() {
		if h, ok := byDay[w]; ok {
			week = append(week, h)
			continue
		}
		week = append(week, ClosedDay(w))
	}
	return week
}

func (h *SpaceHour) ID() int64                 { return h.id }
func (h *SpaceHour) Weekday() Weekday          { return h.weekday }
func (h *SpaceHour) OpenTime() *time.Duration  { return h.openTime }
func (h *SpaceHour) CloseTime() *time.Duration { return h.closeTime }
func (h *SpaceHour) Closed() bool              { return h.closed }
func (h *SpaceHour) NonStop() bool             { return h.nonStop }
func (h *SpaceHour) CreatedAt() time.Time      { return h.createdAt }
func (h *SpaceHour) UpdatedAt() time.Time      { return h.updatedAt }
