package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    space_id, meeting_room_id, subscription_id, date, slot_start, slot_end, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

type CreateBookingParams struct {
	SpaceID        int64
	MeetingRoomID  int64
	SubscriptionID int64
	Date           pgtype.Date
	SlotStart      pgtype.Time
	SlotEnd        pgtype.Time
	Status         string
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (int64, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.SpaceID,
		arg.MeetingRoomID,
		arg.SubscriptionID,
		arg.Date,
		arg.SlotStart,
		arg.SlotEnd,
		arg.Status,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listActiveBookingSlots = `-- name: ListActiveBookingSlots :many
SELECT slot_start, slot_end
FROM bookings
WHERE meeting_room_id = $1 AND date = $2 AND status = 'active'
ORDER BY slot_start
`

type ListActiveBookingSlotsParams struct {
	MeetingRoomID int64
	Date          pgtype.Date
}

type ListActiveBookingSlotsRow struct {
	SlotStart pgtype.Time
	SlotEnd   pgtype.Time
}

func (q *Queries) ListActiveBookingSlots(ctx context.Context, db DBTX, arg ListActiveBookingSlotsParams) ([]ListActiveBookingSlotsRow, error) {
	rows, err := db.Query(ctx, listActiveBookingSlots, arg.MeetingRoomID, arg.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListActiveBookingSlotsRow{}
	for rows.Next() {
		var i ListActiveBookingSlotsRow
		if err := rows.Scan(&i.SlotStart, &i.SlotEnd); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
