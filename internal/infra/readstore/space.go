package readstore

import (
	"context"
	"log/slog"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"
)

type SpaceReadQueries interface {
	GetSpace(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.GetSpaceRow, error)
	ListSpaceAmenities(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.Amenity, error)
	ListSpaceHours(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.SpaceHour, error)
	ListSpacePhotos(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.SpacePhoto, error)
	ListMeetingRooms(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.MeetingRoom, error)
	ListProducts(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.Product, error)
	GetSpaceLegal(ctx context.Context, db pgquery.DBTX, spaceID int64) (pgquery.SpaceLegal, error)
}

type SpaceReadStore struct {
	queries SpaceReadQueries
	db      pgquery.DBTX
}

func NewSpaceReadStore(queries SpaceReadQueries, db pgquery.DBTX) *SpaceReadStore {
	return &SpaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpaceReadStore) FindSpace(ctx context.Context, spaceID int64) (*queries.SpaceView, error) {
	row, err := r.queries.GetSpace(ctx, r.db, spaceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}
	return toSpaceView(row), nil
}

func (r *SpaceReadStore) ListAmenities(ctx context.Context, spaceID int64) ([]queries.AmenityView, error) {
	rows, err := r.queries.ListSpaceAmenities(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list space amenities", err)
	}
	out := make([]queries.AmenityView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.AmenityView{ID: row.ID, Name: row.Name, Icon: row.Icon})
	}
	return out, nil
}

// ListHours drops rows that break the hour invariants; the week is completed upstream.
func (r *SpaceReadStore) ListHours(ctx context.Context, spaceID int64) ([]*space.SpaceHour, error) {
	rows, err := r.queries.ListSpaceHours(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list space hours", err)
	}

	out := make([]*space.SpaceHour, 0, len(rows))
	for _, row := range rows {
		h, err := space.NewSpaceHour(space.SpaceHourParams{
			ID:        row.ID,
			Weekday:   int(row.Weekday),
			OpenTime:  pgconv.TimeOfDayPtrFromPgtype(row.OpenTime),
			CloseTime: pgconv.TimeOfDayPtrFromPgtype(row.CloseTime),
			Closed:    row.Closed,
			NonStop:   row.NonStop,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
		if err != nil {
			slog.Warn("skipping invalid space hour", "space_id", spaceID, "space_hour_id", row.ID, "error", err)
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *SpaceReadStore) ListPhotos(ctx context.Context, spaceID int64) ([]queries.SpacePhotoView, error) {
	rows, err := r.queries.ListSpacePhotos(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list space photos", err)
	}
	out := make([]queries.SpacePhotoView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.SpacePhotoView{
			ID:            row.ID,
			OriginalPath:  row.OriginalPath,
			ThumbnailPath: row.ThumbnailPath,
			MediumPath:    row.MediumPath,
			Order:         int(row.Order),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *SpaceReadStore) ListMeetingRooms(ctx context.Context, spaceID int64) ([]queries.MeetingRoomView, error) {
	rows, err := r.queries.ListMeetingRooms(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting rooms", err)
	}
	out := make([]queries.MeetingRoomView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMeetingRoomView(row))
	}
	return out, nil
}

// ListProducts skips rows rejected by product.NewProduct so one bad row cannot fail the list.
func (r *SpaceReadStore) ListProducts(ctx context.Context, spaceID int64) ([]*product.Product, error) {
	rows, err := r.queries.ListProducts(ctx, r.db, spaceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}

	out := make([]*product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := toProduct(row)
		if err != nil {
			slog.Warn("skipping invalid product", "space_id", spaceID, "product_id", row.ID, "error", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *SpaceReadStore) FindLegal(ctx context.Context, spaceID int64) (*queries.SpaceLegalView, error) {
	row, err := r.queries.GetSpaceLegal(ctx, r.db, spaceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space legal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find space legal", err)
	}
	return &queries.SpaceLegalView{
		ID:                  row.ID,
		Terms:               pgconv.StringPtrFromPgtype(row.Terms),
		PrivacyPolicy:       pgconv.StringPtrFromPgtype(row.PrivacyPolicy),
		CookiesPolicy:       pgconv.StringPtrFromPgtype(row.CookiesPolicy),
		InternalRegulations: pgconv.StringPtrFromPgtype(row.InternalRegulations),
	}, nil
}

func toSpaceView(row pgquery.GetSpaceRow) *queries.SpaceView {
	return &queries.SpaceView{
		ID:                  row.ID,
		UserID:              row.UserID,
		Name:                row.Name,
		Subdomain:           row.Subdomain,
		Street:              row.Street,
		Latitude:            row.Latitude,
		Longitude:           row.Longitude,
		Phone:               row.Phone,
		HasWhatsapp:         row.HasWhatsapp,
		WhatsappGroupURL:    pgconv.StringPtrFromPgtype(row.WhatsappGroupUrl),
		Email:               pgconv.StringPtrFromPgtype(row.Email),
		FacebookMessenger:   pgconv.StringPtrFromPgtype(row.FacebookMessenger),
		Slogan:              pgconv.StringPtrFromPgtype(row.Slogan),
		Description:         pgconv.StringPtrFromPgtype(row.Description),
		TotalHotDesks:       int(row.TotalHotDesks),
		TotalDedicatedDesks: int(row.TotalDedicatedDesks),
		TotalPrivateOffices: int(row.TotalPrivateOffices),
		TotalMeetingRooms:   int(row.TotalMeetingRooms),
		Logo:                pgconv.StringPtrFromPgtype(row.Logo),
		CoverPhoto:          row.CoverPhoto,
		Directions:          pgconv.StringPtrFromPgtype(row.Directions),
		DirectionsPhoto:     pgconv.StringPtrFromPgtype(row.DirectionsPhoto),
		WifiNetwork:         pgconv.StringPtrFromPgtype(row.WifiNetwork),
		WifiPassword:        pgconv.StringPtrFromPgtype(row.WifiPassword),
		Website:             pgconv.StringPtrFromPgtype(row.Website),
		Facebook:            pgconv.StringPtrFromPgtype(row.Facebook),
		Instagram:           pgconv.StringPtrFromPgtype(row.Instagram),
		Linkedin:            pgconv.StringPtrFromPgtype(row.Linkedin),
		Twitter:             pgconv.StringPtrFromPgtype(row.Twitter),
		VerifiedAt:          pgconv.TimePtrFromPgtype(row.VerifiedAt),
		PublishedAt:         pgconv.TimePtrFromPgtype(row.PublishedAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
		Country:             queries.CountryView{ID: row.CountryID, Name: row.CountryName},
		City: queries.CityView{
			ID:      row.CityID,
			Name:    row.CityName,
			Country: queries.CountryView{ID: row.CityCountryID, Name: row.CityCountryName},
		},
	}
}

func toMeetingRoomView(row pgquery.MeetingRoom) queries.MeetingRoomView {
	v := queries.MeetingRoomView{
		ID:          row.ID,
		Name:        row.Name,
		Capacity:    int(row.Capacity),
		Photo:       pgconv.StringPtrFromPgtype(row.Photo),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		Features: queries.MeetingRoomFeatures{
			HasWhiteboard:              row.HasWhiteboard,
			HasProjector:               row.HasProjector,
			HasMonitor:                 row.HasMonitor,
			HasAudioConferencingSystem: row.HasAudioConferencingSystem,
			HasVideoConferencingSystem: row.HasVideoConferencingSystem,
			HasCatering:                row.HasCatering,
			HasTeaCoffee:               row.HasTeaCoffee,
			HasPrivacyScreen:           row.HasPrivacyScreen,
			HasAirConditioning:         row.HasAirConditioning,
			HasHeating:                 row.HasHeating,
			HasSecurityLock:            row.HasSecurityLock,
			HasNaturalLight:            row.HasNaturalLight,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if from := pgconv.TimeOfDayPtrFromPgtype(row.AvailableFrom); from != nil {
		v.AvailableFrom = clock.FormatTimeOfDay(*from)
	}
	if to := pgconv.TimeOfDayPtrFromPgtype(row.AvailableTo); to != nil {
		v.AvailableTo = clock.FormatTimeOfDay(*to)
	}
	return v
}
