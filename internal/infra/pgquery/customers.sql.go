package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const customerColumns = `id, space_id, first_name, last_name, email, phone, password_hash,
	email_verified_at, deleted_at, created_at, updated_at`

const getCustomerByEmail = `-- name: GetCustomerByEmail :one
SELECT ` + customerColumns + `
FROM customers
WHERE space_id = $1 AND lower(email) = lower($2)
`

type GetCustomerByEmailParams struct {
	SpaceID int64
	Email   string
}

// GetCustomerByEmail includes soft-deleted rows.
func (q *Queries) GetCustomerByEmail(ctx context.Context, db DBTX, arg GetCustomerByEmailParams) (Customer, error) {
	return scanCustomer(db.QueryRow(ctx, getCustomerByEmail, arg.SpaceID, arg.Email))
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var i Customer
	err := row.Scan(
		&i.ID,
		&i.SpaceID,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Phone,
		&i.PasswordHash,
		&i.EmailVerifiedAt,
		&i.DeletedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertCustomer = `-- name: UpsertCustomer :one
INSERT INTO customers (
    space_id, first_name, last_name, email, phone, password_hash,
    email_verified_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
ON CONFLICT (space_id, lower(email)) DO UPDATE SET
    first_name = EXCLUDED.first_name,
    last_name  = EXCLUDED.last_name,
    phone      = COALESCE(EXCLUDED.phone, customers.phone),
    deleted_at = NULL,
    updated_at = EXCLUDED.updated_at
RETURNING ` + customerColumns + `
`

type UpsertCustomerParams struct {
	SpaceID         int64
	FirstName       string
	LastName        string
	Email           string
	Phone           pgtype.Text
	PasswordHash    string
	EmailVerifiedAt pgtype.Timestamptz
	Now             pgtype.Timestamptz
}

func (q *Queries) UpsertCustomer(ctx context.Context, db DBTX, arg UpsertCustomerParams) (Customer, error) {
	row := db.QueryRow(ctx, upsertCustomer,
		arg.SpaceID,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Phone,
		arg.PasswordHash,
		arg.EmailVerifiedAt,
		arg.Now,
	)
	return scanCustomer(row)
}

const updateCustomer = `-- name: UpdateCustomer :execrows
UPDATE customers
SET first_name = $2,
    last_name  = $3,
    phone      = $4,
    deleted_at = $5,
    updated_at = $6
WHERE id = $1
`

type UpdateCustomerParams struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     pgtype.Text
	DeletedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateCustomer(ctx context.Context, db DBTX, arg UpdateCustomerParams) (int64, error) {
	result, err := db.Exec(ctx, updateCustomer,
		arg.ID,
		arg.FirstName,
		arg.LastName,
		arg.Phone,
		arg.DeletedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
