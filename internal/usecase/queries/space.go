package queries

import (
	"context"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/ptr"
	"coworking-booking/internal/usecase/shared"
)

type SpaceReadStore interface {
	FindSpace(ctx context.Context, spaceID int64) (*SpaceView, error)
	ListAmenities(ctx context.Context, spaceID int64) ([]AmenityView, error)
	ListHours(ctx context.Context, spaceID int64) ([]*space.SpaceHour, error)
	ListPhotos(ctx context.Context, spaceID int64) ([]SpacePhotoView, error)
	ListMeetingRooms(ctx context.Context, spaceID int64) ([]MeetingRoomView, error)
	// ListProducts skips rows that fail product invariants.
	ListProducts(ctx context.Context, spaceID int64) ([]*product.Product, error)
	FindLegal(ctx context.Context, spaceID int64) (*SpaceLegalView, error)
}

type SpaceQueries interface {
	GetSpace(ctx context.Context, spaceID int64) (*SpaceView, error)
	GetHours(ctx context.Context, spaceID int64) ([]SpaceHourView, error)
	GetPhotos(ctx context.Context, spaceID int64) ([]SpacePhotoView, error)
	GetMeetingRooms(ctx context.Context, spaceID int64) ([]MeetingRoomView, error)
	GetAmenities(ctx context.Context, spaceID int64) ([]AmenityView, error)
	GetProducts(ctx context.Context, spaceID int64) ([]ProductView, error)
	GetLegal(ctx context.Context, spaceID int64) (*SpaceLegalView, error)
}

type spaceQueriesImpl struct {
	store SpaceReadStore
}

func NewSpaceQueries(store SpaceReadStore) SpaceQueries {
	return &spaceQueriesImpl{store: store}
}

func (q *spaceQueriesImpl) GetSpace(ctx context.Context, spaceID int64) (*SpaceView, error) {
	v, err := q.store.FindSpace(ctx, spaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSpaceNotFound
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	amenities, err := q.store.ListAmenities(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	v.Amenities = amenities
	return v, nil
}

// GetHours always returns seven rows ordered Monday to Sunday.
func (q *spaceQueriesImpl) GetHours(ctx context.Context, spaceID int64) ([]SpaceHourView, error) {
	hours, err := q.store.ListHours(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	week := space.FullWeek(hours)
	out := make([]SpaceHourView, 0, len(week))
	for _, h := range week {
		out = append(out, toSpaceHourView(h))
	}
	return out, nil
}

func toSpaceHourView(h *space.SpaceHour) SpaceHourView {
	v := SpaceHourView{
		ID:        h.ID(),
		Weekday:   h.Weekday().Int(),
		Closed:    h.Closed(),
		NonStop:   h.NonStop(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
	if open := h.OpenTime(); open != nil {
		v.OpenTime = ptr.Of(clock.FormatTimeOfDay(*open))
	}
	if closeAt := h.CloseTime(); closeAt != nil {
		v.CloseTime = ptr.Of(clock.FormatTimeOfDay(*closeAt))
	}
	return v
}

func (q *spaceQueriesImpl) GetPhotos(ctx context.Context, spaceID int64) ([]SpacePhotoView, error) {
	photos, err := q.store.ListPhotos(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	return photos, nil
}

func (q *spaceQueriesImpl) GetMeetingRooms(ctx context.Context, spaceID int64) ([]MeetingRoomView, error) {
	rooms, err := q.store.ListMeetingRooms(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	return rooms, nil
}

func (q *spaceQueriesImpl) GetAmenities(ctx context.Context, spaceID int64) ([]AmenityView, error) {
	amenities, err := q.store.ListAmenities(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	return amenities, nil
}

func (q *spaceQueriesImpl) GetProducts(ctx context.Context, spaceID int64) ([]ProductView, error) {
	products, err := q.store.ListProducts(ctx, spaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, toProductView(p))
	}
	return out, nil
}

func toProductView(p *product.Product) ProductView {
	v := ProductView{
		ID:               p.ID(),
		Name:             p.Name(),
		Price:            p.Price(),
		Photo:            p.Photo(),
		Description:      p.Description(),
		Disclaimer:       p.Disclaimer(),
		Settings:         p.Settings(),
		AccessType:       p.AccessType().String(),
		AccessibleSpaces: p.AccessibleSpaces(),
		IsPromotion:      p.IsPromotion(),
		IsOffer:          p.IsOffer(),
		IsPublished:      p.IsPublished(),
		Position:         p.Position(),
		SeatingOption: SeatingOptionView{
			ID:   p.SeatingOption().ID(),
			Name: p.SeatingOption().Name(),
		},
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
	if from := p.AvailableFrom(); from != nil {
		v.AvailableFrom = ptr.Of(from.Format(shared.DateLayout))
	}
	return v
}

func (q *spaceQueriesImpl) GetLegal(ctx context.Context, spaceID int64) (*SpaceLegalView, error) {
	legal, err := q.store.FindLegal(ctx, spaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrLegalNotFound
		}
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	return legal, nil
}
