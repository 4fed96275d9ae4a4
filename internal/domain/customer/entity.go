package customer

import (
	"time"

	"coworking-booking/internal/pkg/patch"
)

type Customer struct {
	id              int64
	spaceID         int64
	firstName       string
	lastName        string
	email           string
	phone           *string
	passwordHash    string
	emailVerifiedAt *time.Time
	deletedAt       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates a customer with a pre-verified email. The id is assigned on insert.
func New(spaceID int64, contact Contact, passwordHash string, now time.Time) *Customer {
	c := &Customer{
		spaceID:         spaceID,
		email:           contact.Email.Value(),
		passwordHash:    passwordHash,
		emailVerifiedAt: &now,
		createdAt:       now,
		updatedAt:       now,
	}
	c.applyContact(contact)
	return c
}

type ReconstructParams struct {
	ID              int64
	SpaceID         int64
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	PasswordHash    string
	EmailVerifiedAt *time.Time
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(p ReconstructParams) *Customer {
	return &Customer{
		id:              p.ID,
		spaceID:         p.SpaceID,
		firstName:       p.FirstName,
		lastName:        p.LastName,
		email:           p.Email,
		phone:           p.Phone,
		passwordHash:    p.PasswordHash,
		emailVerifiedAt: p.EmailVerifiedAt,
		deletedAt:       p.DeletedAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}

// Restore revives a soft-deleted customer with the latest contact details.
func (c *Customer) Restore(contact Contact, now time.Time) {
	c.deletedAt = nil
	c.UpdateContact(contact, now)
}

// UpdateContact overwrites names and, when supplied, the phone.
func (c *Customer) UpdateContact(contact Contact, now time.Time) {
	c.applyContact(contact)
	c.updatedAt = now
}

func (c *Customer) applyContact(contact Contact) {
	c.firstName = contact.Name.First()
	c.lastName = contact.Name.Last()
	var supplied *string
	if contact.Phone != nil {
		v := contact.Phone.Value()
		supplied = &v
	}
	c.phone = patch.CoalescePtr(supplied, c.phone)
}

// AssignID sets the database identity after insert.
func (c *Customer) AssignID(id int64) {
	c.id = id
}

func (c *Customer) ID() int64                   { return c.id }
func (c *Customer) SpaceID() int64              { return c.spaceID }
func (c *Customer) FirstName() string           { return c.firstName }
func (c *Customer) LastName() string            { return c.lastName }
func (c *Customer) Email() string               { return c.email }
func (c *Customer) Phone() *string              { return c.phone }
func (c *Customer) PasswordHash() string        { return c.passwordHash }
func (c *Customer) EmailVerifiedAt() *time.Time { return c.emailVerifiedAt }
func (c *Customer) DeletedAt() *time.Time       { return c.deletedAt }
func (c *Customer) CreatedAt() time.Time        { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Customer) IsDeleted() bool {
	return c.deletedAt != nil
}
