package repository

import (
	"context"

	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"
)

type CustomerQueries interface {
	GetCustomerByEmail(ctx context.Context, db pgquery.DBTX, arg pgquery.GetCustomerByEmailParams) (pgquery.Customer, error)
	UpsertCustomer(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertCustomerParams) (pgquery.Customer, error)
	UpdateCustomer(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateCustomerParams) (int64, error)
}

type CustomerRepository struct {
	queries CustomerQueries
	db      pgquery.DBTX
}

func NewCustomerRepository(queries CustomerQueries, db pgquery.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, spaceID int64, email string) (*customer.Customer, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, pgquery.GetCustomerByEmailParams{
		SpaceID: spaceID,
		Email:   email,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return toCustomer(row), nil
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	verifiedAt := c.CreatedAt()
	if c.EmailVerifiedAt() != nil {
		verifiedAt = *c.EmailVerifiedAt()
	}

	row, err := r.queries.UpsertCustomer(ctx, r.db, pgquery.UpsertCustomerParams{
		SpaceID:         c.SpaceID(),
		FirstName:       c.FirstName(),
		LastName:        c.LastName(),
		Email:           c.Email(),
		Phone:           pgconv.StringPtrToPgtype(c.Phone()),
		PasswordHash:    c.PasswordHash(),
		EmailVerifiedAt: pgconv.TimeToPgtype(verifiedAt),
		Now:             pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return toCustomer(row), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	affected, err := r.queries.UpdateCustomer(ctx, r.db, pgquery.UpdateCustomerParams{
		ID:        c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     pgconv.StringPtrToPgtype(c.Phone()),
		DeletedAt: pgconv.TimePtrToPgtype(c.DeletedAt()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func toCustomer(row pgquery.Customer) *customer.Customer {
	return customer.Reconstruct(customer.ReconstructParams{
		ID:              row.ID,
		SpaceID:         row.SpaceID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Email:           row.Email,
		Phone:           pgconv.StringPtrFromPgtype(row.Phone),
		PasswordHash:    row.PasswordHash,
		EmailVerifiedAt: pgconv.TimePtrFromPgtype(row.EmailVerifiedAt),
		DeletedAt:       pgconv.TimePtrFromPgtype(row.DeletedAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
