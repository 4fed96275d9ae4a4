package readstore

import (
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"
)

func toProduct(row pgquery.Product) (*product.Product, error) {
	return product.NewProduct(product.Params{
		ID:               row.ID,
		SpaceID:          row.SpaceID,
		Name:             row.Name,
		Price:            row.Price,
		Photo:            pgconv.StringPtrFromPgtype(row.Photo),
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		Disclaimer:       pgconv.StringPtrFromPgtype(row.Disclaimer),
		SeatingOptionID:  int(row.SeatingOptionID),
		Settings:         row.Settings,
		AccessType:       row.AccessType,
		AccessibleSpaces: row.AccessibleSpaces,
		AvailableFrom:    pgconv.DatePtrFromPgtype(row.AvailableFrom),
		IsPromotion:      row.IsPromotion,
		IsOffer:          row.IsOffer,
		IsPublished:      row.IsPublished,
		Position:         int(row.Position),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

// toMeetingRoom leaves the window empty when either bound is NULL.
func toMeetingRoom(row pgquery.MeetingRoom) *space.MeetingRoom {
	room := &space.MeetingRoom{
		ID:      row.ID,
		SpaceID: row.SpaceID,
		Name:    row.Name,
	}
	from := pgconv.TimeOfDayPtrFromPgtype(row.AvailableFrom)
	to := pgconv.TimeOfDayPtrFromPgtype(row.AvailableTo)
	if from != nil && to != nil {
		room.Hours = space.RoomHours{From: *from, To: *to}
	}
	return room
}
