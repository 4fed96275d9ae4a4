//go:build unit || e2e

package builder

import (
	reqdto "coworking-booking/internal/handler/dto/request"
)

type BookingRequestBuilder struct {
	ProductID     int64
	Date          string
	SelectedSlots []string
	Customer      *CustomerBuilder
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		ProductID:     20,
		Date:          "2025-03-10",
		SelectedSlots: []string{"09:00 - 10:00", "10:00 - 11:00"},
		Customer:      NewCustomerBuilder(),
	}
}

func (b *BookingRequestBuilder) With(mutate func(*BookingRequestBuilder)) *BookingRequestBuilder {
	mutate(b)
	return b
}

func (b *BookingRequestBuilder) BuildRequestDTO() reqdto.CreateMeetingRoomBookingRequest {
	return reqdto.CreateMeetingRoomBookingRequest{
		ProductID:     b.ProductID,
		Date:          b.Date,
		SelectedSlots: b.SelectedSlots,
		Customer:      b.Customer.BuildRequestDTO(),
	}
}
