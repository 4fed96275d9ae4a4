package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countLiveAccessCodes = `-- name: CountLiveAccessCodes :one
SELECT COUNT(*)
FROM access_codes
WHERE customer_id = $1 AND space_id = $2 AND status IN ('active', 'inactive')
`

type CountLiveAccessCodesParams struct {
	CustomerID int64
	SpaceID    int64
}

func (q *Queries) CountLiveAccessCodes(ctx context.Context, db DBTX, arg CountLiveAccessCodesParams) (int64, error) {
	row := db.QueryRow(ctx, countLiveAccessCodes, arg.CustomerID, arg.SpaceID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const accessCodeInsert = `INSERT INTO access_codes (
    id, customer_id, customer_type, space_id, subscription_id, valid_from, valid_to,
    is_primary, unique_scans, total_scans, status, qr_code_download_url, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const createAccessCode = `-- name: CreateAccessCode :exec
` + accessCodeInsert

// The conflict target names the live-primary partial index, so only a competing
// primary is swallowed.
const createPrimaryAccessCode = `-- name: CreatePrimaryAccessCode :execrows
` + accessCodeInsert + `
ON CONFLICT (customer_id, space_id) WHERE is_primary AND status IN ('active', 'inactive') DO NOTHING
`

type CreateAccessCodeParams struct {
	ID                pgtype.UUID
	CustomerID        int64
	CustomerType      string
	SpaceID           int64
	SubscriptionID    pgtype.Int8
	ValidFrom         pgtype.Timestamptz
	ValidTo           pgtype.Timestamptz
	IsPrimary         bool
	UniqueScans       int32
	TotalScans        int32
	Status            string
	QrCodeDownloadUrl string
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

func (arg CreateAccessCodeParams) values() []interface{} {
	return []interface{}{
		arg.ID,
		arg.CustomerID,
		arg.CustomerType,
		arg.SpaceID,
		arg.SubscriptionID,
		arg.ValidFrom,
		arg.ValidTo,
		arg.IsPrimary,
		arg.UniqueScans,
		arg.TotalScans,
		arg.Status,
		arg.QrCodeDownloadUrl,
		arg.CreatedAt,
		arg.UpdatedAt,
	}
}

func (q *Queries) CreateAccessCode(ctx context.Context, db DBTX, arg CreateAccessCodeParams) error {
	_, err := db.Exec(ctx, createAccessCode, arg.values()...)
	return err
}

// CreatePrimaryAccessCode returns 0 when another live primary already exists.
func (q *Queries) CreatePrimaryAccessCode(ctx context.Context, db DBTX, arg CreateAccessCodeParams) (int64, error) {
	result, err := db.Exec(ctx, createPrimaryAccessCode, arg.values()...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const activateDueAccessCodes = `-- name: ActivateDueAccessCodes :execrows
UPDATE access_codes
SET status = 'active', updated_at = $1
WHERE status = 'inactive' AND valid_from <= $1 AND valid_to >= $1
`

func (q *Queries) ActivateDueAccessCodes(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, activateDueAccessCodes, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const expireAccessCodes = `-- name: ExpireAccessCodes :execrows
UPDATE access_codes
SET status = 'expired', is_primary = FALSE, updated_at = $1
WHERE status IN ('active', 'inactive') AND valid_to < $1
`

func (q *Queries) ExpireAccessCodes(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, expireAccessCodes, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const promotePrimaryAccessCodes = `-- name: PromotePrimaryAccessCodes :execrows
UPDATE access_codes ac
SET is_primary = TRUE, updated_at = $1
FROM (
    SELECT DISTINCT ON (c.customer_id, c.space_id) c.id
    FROM access_codes c
    WHERE c.status IN ('active', 'inactive')
      AND NOT EXISTS (
          SELECT 1 FROM access_codes p
          WHERE p.customer_id = c.customer_id
            AND p.space_id = c.space_id
            AND p.is_primary
            AND p.status IN ('active', 'inactive')
      )
    ORDER BY c.customer_id, c.space_id, c.valid_from, c.created_at, c.id
) earliest
WHERE ac.id = earliest.id
`

func (q *Queries) PromotePrimaryAccessCodes(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, promotePrimaryAccessCodes, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
