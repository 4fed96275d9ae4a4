package pgquery

import (
	"context"
)

const meetingRoomColumns = `id, space_id, name, capacity, photo, description, available_from, available_to,
       has_whiteboard, has_projector, has_monitor, has_audio_conferencing_system,
       has_video_conferencing_system, has_catering, has_tea_coffee, has_privacy_screen,
       has_air_conditioning, has_heating, has_security_lock, has_natural_light,
       created_at, updated_at`

const getMeetingRoom = `-- name: GetMeetingRoom :one
SELECT ` + meetingRoomColumns + `
FROM meeting_rooms
WHERE id = $1
`

const listMeetingRooms = `-- name: ListMeetingRooms :many
SELECT ` + meetingRoomColumns + `
FROM meeting_rooms
WHERE space_id = $1
ORDER BY name, id
`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMeetingRoom(row scanner, i *MeetingRoom) error {
	return row.Scan(
		&i.ID,
		&i.SpaceID,
		&i.Name,
		&i.Capacity,
		&i.Photo,
		&i.Description,
		&i.AvailableFrom,
		&i.AvailableTo,
		&i.HasWhiteboard,
		&i.HasProjector,
		&i.HasMonitor,
		&i.HasAudioConferencingSystem,
		&i.HasVideoConferencingSystem,
		&i.HasCatering,
		&i.HasTeaCoffee,
		&i.HasPrivacyScreen,
		&i.HasAirConditioning,
		&i.HasHeating,
		&i.HasSecurityLock,
		&i.HasNaturalLight,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func (q *Queries) GetMeetingRoom(ctx context.Context, db DBTX, id int64) (MeetingRoom, error) {
	var i MeetingRoom
	err := scanMeetingRoom(db.QueryRow(ctx, getMeetingRoom, id), &i)
	return i, err
}

func (q *Queries) ListMeetingRooms(ctx context.Context, db DBTX, spaceID int64) ([]MeetingRoom, error) {
	rows, err := db.Query(ctx, listMeetingRooms, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []MeetingRoom{}
	for rows.Next() {
		var i MeetingRoom
		if err := scanMeetingRoom(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
