package accesscode

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CustomerTypeUser is the only customer type codes are issued for.
const CustomerTypeUser = "user"

var ErrInvalidValidity = errors.New("valid_to must not be before valid_from")

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusExpired, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsLive reports a status that still counts toward the primary designation.
func (s Status) IsLive() bool {
	return s == StatusActive || s == StatusInactive
}

// StatusAt derives the issuance status of a window.
func StatusAt(validFrom, validTo, now time.Time) Status {
	if !validFrom.After(now) && !now.After(validTo) {
		return StatusActive
	}
	return StatusInactive
}

type AccessCode struct {
	id             string
	customerID     int64
	spaceID        int64
	subscriptionID *int64
	validFrom      time.Time
	validTo        time.Time
	isPrimary      bool
	uniqueScans    int
	totalScans     int
	status         Status
	qrCodeURL      string
	createdAt      time.Time
	updatedAt      time.Time
}

type NewParams struct {
	CustomerID     int64
	SpaceID        int64
	SubscriptionID *int64
	ValidFrom      time.Time
	ValidTo        time.Time
	Primary        bool
}

func New(p NewParams, now time.Time) (*AccessCode, error) {
	if p.ValidTo.Before(p.ValidFrom) {
		return nil, ErrInvalidValidity
	}
	return &AccessCode{
		id:             uuid.NewString(),
		customerID:     p.CustomerID,
		spaceID:        p.SpaceID,
		subscriptionID: p.SubscriptionID,
		validFrom:      p.ValidFrom,
		validTo:        p.ValidTo,
		isPrimary:      p.Primary,
		status:         StatusAt(p.ValidFrom, p.ValidTo, now),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID             string
	CustomerID     int64
	SpaceID        int64
	SubscriptionID *int64
	ValidFrom      time.Time
	ValidTo        time.Time
	IsPrimary      bool
	UniqueScans    int
	TotalScans     int
	Status         Status
	QRCodeURL      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func Reconstruct(p ReconstructParams) *AccessCode {
	return &AccessCode{
		id:             p.ID,
		customerID:     p.CustomerID,
		spaceID:        p.SpaceID,
		subscriptionID: p.SubscriptionID,
		validFrom:      p.ValidFrom,
		validTo:        p.ValidTo,
		isPrimary:      p.IsPrimary,
		uniqueScans:    p.UniqueScans,
		totalScans:     p.TotalScans,
		status:         p.Status,
		qrCodeURL:      p.QRCodeURL,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}
}

func (c *AccessCode) SetQRCodeURL(url string) {
	c.qrCodeURL = url
}

// Demote clears the primary flag, used when another code already holds it.
func (c *AccessCode) Demote() {
	c.isPrimary = false
}

func (c *AccessCode) ID() string             { return c.id }
func (c *AccessCode) CustomerID() int64      { return c.customerID }
func (c *AccessCode) CustomerType() string   { return CustomerTypeUser }
func (c *AccessCode) SpaceID() int64         { return c.spaceID }
func (c *AccessCode) SubscriptionID() *int64 { return c.subscriptionID }
func (c *AccessCode) ValidFrom() time.Time   { return c.validFrom }
func (c *AccessCode) ValidTo() time.Time     { return c.validTo }
func (c *AccessCode) IsPrimary() bool        { return c.isPrimary }
func (c *AccessCode) UniqueScans() int       { return c.uniqueScans }
func (c *AccessCode) TotalScans() int        { return c.totalScans }
func (c *AccessCode) Status() Status         { return c.status }
func (c *AccessCode) QRCodeURL() string      { return c.qrCodeURL }
func (c *AccessCode) CreatedAt() time.Time   { return c.createdAt }
func (c *AccessCode) UpdatedAt() time.Time   { return c.updatedAt }
