package product

import "errors"

var (
	ErrUnsupportedSeatingOption = errors.New("unsupported seating option")
	ErrInvalidDurationUnit      = errors.New("invalid duration unit")
	ErrInvalidDurationType      = errors.New("invalid day pass duration type")
	ErrInvalidAccessType        = errors.New("invalid access type")
)

type SeatingOption int

const (
	DayPass SeatingOption = iota + 1
	HotDesk
	DedicatedDesk
	MeetingRoom
	PrivateOffice
)

func NewSeatingOption(id int) (SeatingOption, error) {
	o := SeatingOption(id)
	if !o.IsValid() {
		return 0, ErrUnsupportedSeatingOption
	}
	return o, nil
}

func (o SeatingOption) IsValid() bool {
	return o >= DayPass && o <= PrivateOffice
}

func (o SeatingOption) ID() int {
	return int(o)
}

func (o SeatingOption) String() string {
	switch o {
	case DayPass:
		return "DAY_PASS"
	case HotDesk:
		return "HOT_DESK"
	case DedicatedDesk:
		return "DEDICATED_DESK"
	case MeetingRoom:
		return "MEETING_ROOM"
	case PrivateOffice:
		return "PRIVATE_OFFICE"
	default:
		return "UNKNOWN"
	}
}

// Name is the label shown to customers.
func (o SeatingOption) Name() string {
	switch o {
	case DayPass:
		return "Day Pass"
	case HotDesk:
		return "Hot Desk"
	case DedicatedDesk:
		return "Dedicated Desk"
	case MeetingRoom:
		return "Meeting/Event Room"
	case PrivateOffice:
		return "Private Office"
	default:
		return ""
	}
}

type DurationUnit int

const (
	Hours DurationUnit = iota + 1
	Days
	Months
	Years
)

func (u DurationUnit) IsValid() bool {
	return u >= Hours && u <= Years
}

func (u DurationUnit) String() string {
	switch u {
	case Hours:
		return "HOURS"
	case Days:
		return "DAYS"
	case Months:
		return "MONTHS"
	case Years:
		return "YEARS"
	default:
		return "UNKNOWN"
	}
}

// DurationType applies to day passes only.
type DurationType int

const (
	HalfDay DurationType = iota + 1
	FullDays
)

func (t DurationType) IsValid() bool {
	return t == HalfDay || t == FullDays
}

func (t DurationType) String() string {
	switch t {
	case HalfDay:
		return "HALF_DAY"
	case FullDays:
		return "ONE_OR_MORE_FULL_DAYS"
	default:
		return "UNKNOWN"
	}
}

type AccessType string

const (
	AccessCurrentSpace   AccessType = "current_space"
	AccessAllSpaces      AccessType = "all_spaces"
	AccessSelectedSpaces AccessType = "selected_spaces"
)

func (a AccessType) String() string {
	return string(a)
}

func (a AccessType) IsValid() bool {
	switch a {
	case AccessCurrentSpace, AccessAllSpaces, AccessSelectedSpaces:
		return true
	default:
		return false
	}
}

func NewAccessType(s string) (AccessType, error) {
	a := AccessType(s)
	if !a.IsValid() {
		return "", ErrInvalidAccessType
	}
	return a, nil
}
