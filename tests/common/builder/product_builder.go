//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"coworking-booking/internal/domain/product"
)

type ProductBuilder struct {
	ID            int64
	SpaceID       int64
	Name          string
	Price         string
	SeatingOption product.SeatingOption
	Settings      any
	AccessType    product.AccessType
	AvailableFrom *time.Time
	IsPublished   bool
}

// NewProductBuilder defaults to a published monthly hot desk.
func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:            10,
		SpaceID:       1,
		Name:          "Hot Desk Monthly",
		Price:         "199.00",
		SeatingOption: product.HotDesk,
		Settings: product.HotDeskSettings{
			Duration:         1,
			DurationUnit:     product.Months,
			Persons:          1,
			MeetingRoomHours: 4,
		},
		AccessType:  product.AccessCurrentSpace,
		IsPublished: true,
	}
}

// NewMeetingRoomProductBuilder is bound to the room built by NewMeetingRoomBuilder.
func NewMeetingRoomProductBuilder() *ProductBuilder {
	return NewProductBuilder().With(func(b *ProductBuilder) {
		b.ID = 20
		b.Name = "Board Room"
		b.Price = "25.00"
		b.SeatingOption = product.MeetingRoom
		b.Settings = product.MeetingRoomSettings{
			MeetingRoomID: 7,
			Duration:      1,
			DurationUnit:  product.Hours,
		}
	})
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildParams() product.Params {
	raw, err := json.Marshal(b.Settings)
	if err != nil {
		panic(err)
	}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return product.Params{
		ID:              b.ID,
		SpaceID:         b.SpaceID,
		Name:            b.Name,
		Price:           b.Price,
		SeatingOptionID: b.SeatingOption.ID(),
		Settings:        raw,
		AccessType:      b.AccessType.String(),
		AvailableFrom:   b.AvailableFrom,
		IsPublished:     b.IsPublished,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

// BuildDomain panics on invalid input so table setups stay terse.
func (b *ProductBuilder) BuildDomain() *product.Product {
	p, err := product.NewProduct(b.BuildParams())
	if err != nil {
		panic(err)
	}
	return p
}
