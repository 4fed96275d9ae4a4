//go:build unit || e2e

package builder

import (
	"time"

	domcustomer "coworking-booking/internal/domain/customer"
	reqdto "coworking-booking/internal/handler/dto/request"
)

type CustomerBuilder struct {
	ID        int64
	SpaceID   int64
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	DeletedAt *time.Time
	CreatedAt time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:        100,
		SpaceID:   1,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildContact() (domcustomer.Contact, error) {
	return domcustomer.NewContact(b.FirstName, b.LastName, b.Email, b.Phone)
}

func (b *CustomerBuilder) BuildDomain(now time.Time) (*domcustomer.Customer, error) {
	contact, err := b.BuildContact()
	if err != nil {
		return nil, err
	}
	return domcustomer.New(b.SpaceID, contact, "$2a$10$hash", now), nil
}

func (b *CustomerBuilder) BuildReconstructed() *domcustomer.Customer {
	return domcustomer.Reconstruct(domcustomer.ReconstructParams{
		ID:              b.ID,
		SpaceID:         b.SpaceID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		PasswordHash:    "$2a$10$hash",
		EmailVerifiedAt: &b.CreatedAt,
		DeletedAt:       b.DeletedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	})
}

func (b *CustomerBuilder) BuildRequestDTO() reqdto.Customer {
	return reqdto.Customer{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}
