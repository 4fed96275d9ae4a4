package space

import (
	"errors"
	"time"
)

var ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")

// Weekday numbers days Monday-first, 1..7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func NewWeekday(n int) (Weekday, error) {
	w := Weekday(n)
	if !w.IsValid() {
		return 0, ErrInvalidWeekday
	}
	return w, nil
}

func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Int() int {
	return int(w)
}
