package repository

import (
	"context"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AccessCodeQueries interface {
	CountLiveAccessCodes(ctx context.Context, db pgquery.DBTX, arg pgquery.CountLiveAccessCodesParams) (int64, error)
	CreateAccessCode(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateAccessCodeParams) error
	CreatePrimaryAccessCode(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateAccessCodeParams) (int64, error)
}

type AccessCodeRepository struct {
	queries AccessCodeQueries
	db      pgquery.DBTX
}

func NewAccessCodeRepository(queries AccessCodeQueries, db pgquery.DBTX) *AccessCodeRepository {
	return &AccessCodeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccessCodeRepository) HasLiveCode(ctx context.Context, customerID, spaceID int64) (bool, error) {
	n, err := r.queries.CountLiveAccessCodes(ctx, r.db, pgquery.CountLiveAccessCodesParams{
		CustomerID: customerID,
		SpaceID:    spaceID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to count live access codes", err)
	}
	return n > 0, nil
}

func (r *AccessCodeRepository) Create(ctx context.Context, code *accesscode.AccessCode) error {
	params, err := toCreateAccessCodeParams(code)
	if err != nil {
		return err
	}
	if err := r.queries.CreateAccessCode(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create access code", err)
	}
	return nil
}

// CreatePrimary inserts unless the live-primary index already holds a code for the pair.
func (r *AccessCodeRepository) CreatePrimary(ctx context.Context, code *accesscode.AccessCode) (bool, error) {
	params, err := toCreateAccessCodeParams(code)
	if err != nil {
		return false, err
	}
	affected, err := r.queries.CreatePrimaryAccessCode(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create primary access code", err)
	}
	return affected > 0, nil
}

func toCreateAccessCodeParams(code *accesscode.AccessCode) (pgquery.CreateAccessCodeParams, error) {
	id, err := uuid.Parse(code.ID())
	if err != nil {
		return pgquery.CreateAccessCodeParams{}, infra.WrapRepoErr("invalid access code id", err, infra.KindDBFailure)
	}
	return pgquery.CreateAccessCodeParams{
		ID:                pgconv.UUIDToPgtype(id),
		CustomerID:        code.CustomerID(),
		CustomerType:      code.CustomerType(),
		SpaceID:           code.SpaceID(),
		SubscriptionID:    pgconv.Int8PtrToPgtype(code.SubscriptionID()),
		ValidFrom:         pgconv.TimeToPgtype(code.ValidFrom()),
		ValidTo:           pgconv.TimeToPgtype(code.ValidTo()),
		IsPrimary:         code.IsPrimary(),
		UniqueScans:       int32(code.UniqueScans()),
		TotalScans:        int32(code.TotalScans()),
		Status:            code.Status().String(),
		QrCodeDownloadUrl: code.QRCodeURL(),
		CreatedAt:         pgconv.TimeToPgtype(code.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(code.UpdatedAt()),
	}, nil
}
