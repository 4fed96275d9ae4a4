package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getSpace = `-- name: GetSpace :one
SELECT s.id, s.user_id, s.name, s.subdomain, s.street, s.latitude, s.longitude, s.phone,
       s.has_whatsapp, s.whatsapp_group_url, s.email, s.facebook_messenger, s.slogan, s.description,
       s.total_hot_desks, s.total_dedicated_desks, s.total_private_offices, s.total_meeting_rooms,
       s.logo, s.cover_photo, s.directions, s.directions_photo, s.wifi_network, s.wifi_password,
       s.website, s.facebook, s.instagram, s.linkedin, s.twitter, s.verified_at, s.published_at,
       s.created_at, s.updated_at,
       co.id AS country_id, co.name AS country_name,
       ci.id AS city_id, ci.name AS city_name,
       cco.id AS city_country_id, cco.name AS city_country_name
FROM spaces s
JOIN countries co ON co.id = s.country_id
JOIN cities ci ON ci.id = s.city_id
JOIN countries cco ON cco.id = ci.country_id
WHERE s.id = $1
`

type GetSpaceRow struct {
	ID                  int64
	UserID              int64
	Name                string
	Subdomain           string
	Street              string
	Latitude            string
	Longitude           string
	Phone               string
	HasWhatsapp         bool
	WhatsappGroupUrl    pgtype.Text
	Email               pgtype.Text
	FacebookMessenger   pgtype.Text
	Slogan              pgtype.Text
	Description         pgtype.Text
	TotalHotDesks       int32
	TotalDedicatedDesks int32
	TotalPrivateOffices int32
	TotalMeetingRooms   int32
	Logo                pgtype.Text
	CoverPhoto          string
	Directions          pgtype.Text
	DirectionsPhoto     pgtype.Text
	WifiNetwork         pgtype.Text
	WifiPassword        pgtype.Text
	Website             pgtype.Text
	Facebook            pgtype.Text
	Instagram           pgtype.Text
	Linkedin            pgtype.Text
	Twitter             pgtype.Text
	VerifiedAt          pgtype.Timestamptz
	PublishedAt         pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	CountryID           int64
	CountryName         string
	CityID              int64
	CityName            string
	CityCountryID       int64
	CityCountryName     string
}

func (q *Queries) GetSpace(ctx context.Context, db DBTX, id int64) (GetSpaceRow, error) {
	row := db.QueryRow(ctx, getSpace, id)
	var i GetSpaceRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Name,
		&i.Subdomain,
		&i.Street,
		&i.Latitude,
		&i.Longitude,
		&i.Phone,
		&i.HasWhatsapp,
		&i.WhatsappGroupUrl,
		&i.Email,
		&i.FacebookMessenger,
		&i.Slogan,
		&i.Description,
		&i.TotalHotDesks,
		&i.TotalDedicatedDesks,
		&i.TotalPrivateOffices,
		&i.TotalMeetingRooms,
		&i.Logo,
		&i.CoverPhoto,
		&i.Directions,
		&i.DirectionsPhoto,
		&i.WifiNetwork,
		&i.WifiPassword,
		&i.Website,
		&i.Facebook,
		&i.Instagram,
		&i.Linkedin,
		&i.Twitter,
		&i.VerifiedAt,
		&i.PublishedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CountryID,
		&i.CountryName,
		&i.CityID,
		&i.CityName,
		&i.CityCountryID,
		&i.CityCountryName,
	)
	return i, err
}

const listSpaceAmenities = `-- name: ListSpaceAmenities :many
SELECT a.id, a.name, a.icon
FROM amenities a
JOIN space_amenities sa ON sa.amenity_id = a.id
WHERE sa.space_id = $1
ORDER BY a.name, a.id
`

func (q *Queries) ListSpaceAmenities(ctx context.Context, db DBTX, spaceID int64) ([]Amenity, error) {
	rows, err := db.Query(ctx, listSpaceAmenities, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Amenity{}
	for rows.Next() {
		var i Amenity
		if err := rows.Scan(&i.ID, &i.Name, &i.Icon); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listSpaceHours = `-- name: ListSpaceHours :many
SELECT id, weekday, open_time, close_time, closed, non_stop, created_at, updated_at
FROM space_hours
WHERE space_id = $1
ORDER BY weekday
`

func (q *Queries) ListSpaceHours(ctx context.Context, db DBTX, spaceID int64) ([]SpaceHour, error) {
	rows, err := db.Query(ctx, listSpaceHours, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SpaceHour{}
	for rows.Next() {
		var i SpaceHour
		if err := rows.Scan(
			&i.ID,
			&i.Weekday,
			&i.OpenTime,
			&i.CloseTime,
			&i.Closed,
			&i.NonStop,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listSpacePhotos = `-- name: ListSpacePhotos :many
SELECT id, original_path, thumbnail_path, medium_path, "order", created_at, updated_at
FROM space_photos
WHERE space_id = $1
ORDER BY "order", id
`

func (q *Queries) ListSpacePhotos(ctx context.Context, db DBTX, spaceID int64) ([]SpacePhoto, error) {
	rows, err := db.Query(ctx, listSpacePhotos, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SpacePhoto{}
	for rows.Next() {
		var i SpacePhoto
		if err := rows.Scan(
			&i.ID,
			&i.OriginalPath,
			&i.ThumbnailPath,
			&i.MediumPath,
			&i.Order,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSpaceLegal = `-- name: GetSpaceLegal :one
SELECT id, terms, privacy_policy, cookies_policy, internal_regulations
FROM space_legals
WHERE space_id = $1
`

func (q *Queries) GetSpaceLegal(ctx context.Context, db DBTX, spaceID int64) (SpaceLegal, error) {
	row := db.QueryRow(ctx, getSpaceLegal, spaceID)
	var i SpaceLegal
	err := row.Scan(
		&i.ID,
		&i.Terms,
		&i.PrivacyPolicy,
		&i.CookiesPolicy,
		&i.InternalRegulations,
	)
	return i, err
}
