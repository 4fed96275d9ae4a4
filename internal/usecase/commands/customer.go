package commands

import (
	"context"

	"coworking-booking/internal/domain/customer"
	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

// CustomerResolver finds or creates the customer behind a booking request.
type CustomerResolver interface {
	Resolve(ctx context.Context, tx shared.Tx, spaceID int64, contact customer.Contact) (*customer.Customer, error)
}

type customerResolverImpl struct {
	hasher shared.CredentialHasher
	clock  clock.Clock
}

func NewCustomerResolver(hasher shared.CredentialHasher, clock clock.Clock) CustomerResolver {
	return &customerResolverImpl{hasher: hasher, clock: clock}
}

func (r *customerResolverImpl) Resolve(
	ctx context.Context,
	tx shared.Tx,
	spaceID int64,
	contact customer.Contact,
) (*customer.Customer, error) {
	now := r.clock.Now()

	existing, err := tx.Customers().FindByEmail(ctx, spaceID, contact.Email.Value())
	switch {
	case err == nil:
		if existing.IsDeleted() {
			existing.Restore(contact, now)
		} else {
			existing.UpdateContact(contact, now)
		}
		if err := tx.Customers().Update(ctx, existing); err != nil {
			return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
		}
		return existing, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	hash, err := r.hasher.RandomCredentialHash()
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err).WithMessage("failed to generate customer credential")
	}

	created, err := tx.Customers().Upsert(ctx, customer.New(spaceID, contact, hash, now))
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}
	return created, nil
}

// contactFromRequest validates the contact before any transaction starts.
func contactFromRequest(c reqdto.Customer) (customer.Contact, error) {
	contact, err := customer.NewContact(c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return customer.Contact{}, shared.ErrInvalidCustomer.WithCause(err).WithMessage(err.Error())
	}
	return contact, nil
}
