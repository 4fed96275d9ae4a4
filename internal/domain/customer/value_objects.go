package customer

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 255
	MaxEmailLength = 255
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("first and last name are required")
	ErrNameTooLong  = errors.New("name cannot exceed 255 characters")
	ErrInvalidPhone = errors.New("phone must be 10 to 15 digits with an optional leading +")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Normalized is the form emails are compared by.
func (e Email) Normalized() string {
	return strings.ToLower(e.value)
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(first) > MaxNameLength || utf8.RuneCountInString(last) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

// Contact is the validated contact details supplied with a request. Phone is nil when
// the caller did not send one.
type Contact struct {
	Name  Name
	Email Email
	Phone *Phone
}

func NewContact(first, last, email string, phone *string) (Contact, error) {
	name, err := NewName(first, last)
	if err != nil {
		return Contact{}, err
	}
	addr, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}

	c := Contact{Name: name, Email: addr}
	if phone != nil {
		p, err := NewPhone(*phone)
		if err != nil {
			return Contact{}, err
		}
		c.Phone = &p
	}
	return c, nil
}
