package pgquery

import (
	"context"
)

const productColumns = `id, space_id, name, price::text, photo, description, disclaimer,
       seating_option_id, settings, access_type, accessible_spaces, available_from,
       is_promotion, is_offer, is_published, position, created_at, updated_at`

const getProduct = `-- name: GetProduct :one
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

const listProducts = `-- name: ListProducts :many
SELECT ` + productColumns + `
FROM products
WHERE space_id = $1
ORDER BY position, name, id
`

func scanProduct(row scanner, i *Product) error {
	return row.Scan(
		&i.ID,
		&i.SpaceID,
		&i.Name,
		&i.Price,
		&i.Photo,
		&i.Description,
		&i.Disclaimer,
		&i.SeatingOptionID,
		&i.Settings,
		&i.AccessType,
		&i.AccessibleSpaces,
		&i.AvailableFrom,
		&i.IsPromotion,
		&i.IsOffer,
		&i.IsPublished,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func (q *Queries) GetProduct(ctx context.Context, db DBTX, id int64) (Product, error) {
	var i Product
	err := scanProduct(db.QueryRow(ctx, getProduct, id), &i)
	return i, err
}

func (q *Queries) ListProducts(ctx context.Context, db DBTX, spaceID int64) ([]Product, error) {
	rows, err := db.Query(ctx, listProducts, spaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := scanProduct(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
