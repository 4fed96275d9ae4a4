//go:build unit || e2e

package builder

import (
	"time"

	"coworking-booking/internal/domain/accesscode"
	reqdto "coworking-booking/internal/handler/dto/request"
)

type AccessCodeRequestBuilder struct {
	ProductID int64
	StartDate string
	EndDate   string
	Customer  *CustomerBuilder
}

func NewAccessCodeRequestBuilder() *AccessCodeRequestBuilder {
	return &AccessCodeRequestBuilder{
		ProductID: 10,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Customer:  NewCustomerBuilder(),
	}
}

func (b *AccessCodeRequestBuilder) With(mutate func(*AccessCodeRequestBuilder)) *AccessCodeRequestBuilder {
	mutate(b)
	return b
}

func (b *AccessCodeRequestBuilder) BuildStandaloneRequestDTO() reqdto.CreateStandaloneAccessCodeRequest {
	return reqdto.CreateStandaloneAccessCodeRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Customer:  b.Customer.BuildRequestDTO(),
	}
}

func (b *AccessCodeRequestBuilder) BuildProductRequestDTO() reqdto.CreateProductAccessCodeRequest {
	return reqdto.CreateProductAccessCodeRequest{
		ProductID: b.ProductID,
		StartDate: b.StartDate,
		Customer:  b.Customer.BuildRequestDTO(),
	}
}

type AccessCodeBuilder struct {
	ID             string
	CustomerID     int64
	SpaceID        int64
	SubscriptionID *int64
	ValidFrom      time.Time
	ValidTo        time.Time
	IsPrimary      bool
	Status         accesscode.Status
	QRCodeURL      string
}

func NewAccessCodeBuilder() *AccessCodeBuilder {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &AccessCodeBuilder{
		ID:         "6f1c1f5e-8a5b-4b87-9c0e-2f0b1a7d3c11",
		CustomerID: 100,
		SpaceID:    1,
		ValidFrom:  from,
		ValidTo:    from.Add(3*24*time.Hour - time.Second),
		IsPrimary:  true,
		Status:     accesscode.StatusInactive,
		QRCodeURL:  "http://localhost/qr/6f1c1f5e-8a5b-4b87-9c0e-2f0b1a7d3c11.png",
	}
}

func (b *AccessCodeBuilder) With(mutate func(*AccessCodeBuilder)) *AccessCodeBuilder {
	mutate(b)
	return b
}

func (b *AccessCodeBuilder) BuildDomain() *accesscode.AccessCode {
	created := b.ValidFrom.Add(-24 * time.Hour)
	return accesscode.Reconstruct(accesscode.ReconstructParams{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		SpaceID:        b.SpaceID,
		SubscriptionID: b.SubscriptionID,
		ValidFrom:      b.ValidFrom,
		ValidTo:        b.ValidTo,
		IsPrimary:      b.IsPrimary,
		Status:         b.Status,
		QRCodeURL:      b.QRCodeURL,
		CreatedAt:      created,
		UpdatedAt:      created,
	})
}
