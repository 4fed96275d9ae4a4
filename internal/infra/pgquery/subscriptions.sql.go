package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSubscription = `-- name: CreateSubscription :one
INSERT INTO subscriptions (
    space_id, customer_id, product_id, starts_at, ends_at,
    allowed_weekdays, meeting_room_hours, duration_days, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

type CreateSubscriptionParams struct {
	SpaceID          int64
	CustomerID       int64
	ProductID        int64
	StartsAt         pgtype.Timestamptz
	EndsAt           pgtype.Timestamptz
	AllowedWeekdays  []int16
	MeetingRoomHours int32
	DurationDays     int32
	Status           string
	CreatedAt        pgtype.Timestamptz
}

func (q *Queries) CreateSubscription(ctx context.Context, db DBTX, arg CreateSubscriptionParams) (int64, error) {
	row := db.QueryRow(ctx, createSubscription,
		arg.SpaceID,
		arg.CustomerID,
		arg.ProductID,
		arg.StartsAt,
		arg.EndsAt,
		arg.AllowedWeekdays,
		arg.MeetingRoomHours,
		arg.DurationDays,
		arg.Status,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createMeetingRoomCredit = `-- name: CreateMeetingRoomCredit :exec
INSERT INTO meeting_room_credits (subscription_id, customer_id, hours_total, hours_used)
VALUES ($1, $2, $3, $4)
`

type CreateMeetingRoomCreditParams struct {
	SubscriptionID int64
	CustomerID     int64
	HoursTotal     int32
	HoursUsed      int32
}

func (q *Queries) CreateMeetingRoomCredit(ctx context.Context, db DBTX, arg CreateMeetingRoomCreditParams) error {
	_, err := db.Exec(ctx, createMeetingRoomCredit,
		arg.SubscriptionID,
		arg.CustomerID,
		arg.HoursTotal,
		arg.HoursUsed,
	)
	return err
}
