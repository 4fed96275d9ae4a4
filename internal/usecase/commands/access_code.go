package commands

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/customer"
	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/shared"
)

type AccessCodeResult struct {
	AccessCode *accesscode.AccessCode
	Customer   *customer.Customer
}

type AccessCodeCommands interface {
	CreateStandalone(ctx context.Context, spaceID int64, req reqdto.CreateStandaloneAccessCodeRequest) (*AccessCodeResult, error)
	CreateForProduct(ctx context.Context, spaceID int64, req reqdto.CreateProductAccessCodeRequest) (*AccessCodeResult, error)
}

// AccessCodeIssuer creates codes inside a caller-owned transaction.
type AccessCodeIssuer interface {
	Issue(ctx context.Context, tx shared.Tx, p IssueParams) (*accesscode.AccessCode, error)
	// Discard removes the QR artifacts of codes whose transaction did not commit.
	Discard(ctx context.Context, codeIDs []string)
}

type IssueParams struct {
	CustomerID     int64
	SpaceID        int64
	SubscriptionID *int64
	ValidFrom      time.Time
	ValidTo        time.Time
}

type accessCodeIssuerImpl struct {
	qr    shared.QRStore
	clock clock.Clock
}

func NewAccessCodeIssuer(qr shared.QRStore, clock clock.Clock) AccessCodeIssuer {
	return &accessCodeIssuerImpl{qr: qr, clock: clock}
}

func (i *accessCodeIssuerImpl) Issue(ctx context.Context, tx shared.Tx, p IssueParams) (*accesscode.AccessCode, error) {
	live, err := tx.AccessCodes().HasLiveCode(ctx, p.CustomerID, p.SpaceID)
	if err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	code, err := accesscode.New(accesscode.NewParams{
		CustomerID:     p.CustomerID,
		SpaceID:        p.SpaceID,
		SubscriptionID: p.SubscriptionID,
		ValidFrom:      p.ValidFrom,
		ValidTo:        p.ValidTo,
		Primary:        !live,
	}, i.clock.Now())
	if err != nil {
		return nil, shared.ErrInvalidDateRange.WithCause(err)
	}
	code.SetQRCodeURL(i.qr.DownloadURL(code.ID()))

	if err := i.insert(ctx, tx, code); err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err)
	}

	// Written last so a failed insert leaves no artifact behind. Callers discard it
	// when the transaction does not commit.
	if err := i.qr.Save(ctx, code.ID()); err != nil {
		return nil, shared.ErrDatabaseOperationFailed.WithCause(err).WithMessage("failed to store QR code")
	}
	return code, nil
}

func (i *accessCodeIssuerImpl) Discard(ctx context.Context, codeIDs []string) {
	for _, id := range codeIDs {
		if err := i.qr.Remove(ctx, id); err != nil {
			slog.Warn("failed to remove QR code of uncommitted access code", "access_code_id", id, "error", err)
		}
	}
}

// issuedCodes records the code issued by each transaction attempt.
type issuedCodes []string

func (c *issuedCodes) add(code *accesscode.AccessCode) {
	*c = append(*c, code.ID())
}

// settle discards every attempt except committed, which is nil when the transaction failed.
func (c issuedCodes) settle(ctx context.Context, issuer AccessCodeIssuer, committed *accesscode.AccessCode) {
	stale := make([]string, 0, len(c))
	for _, id := range c {
		if committed == nil || id != committed.ID() {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		issuer.Discard(context.WithoutCancel(ctx), stale)
	}
}

// committedCode is the code a finished transaction may keep.
func committedCode(result *AccessCodeResult, err error) *accesscode.AccessCode {
	if err != nil {
		return nil
	}
	return result.AccessCode
}

func (i *accessCodeIssuerImpl) insert(ctx context.Context, tx shared.Tx, code *accesscode.AccessCode) error {
	if !code.IsPrimary() {
		return tx.AccessCodes().Create(ctx, code)
	}

	inserted, err := tx.AccessCodes().CreatePrimary(ctx, code)
	if err != nil {
		return err
	}
	if inserted {
		return nil
	}

	slog.Debug("primary access code taken concurrently, issuing as secondary",
		"customer_id", code.CustomerID(), "space_id", code.SpaceID())
	code.Demote()
	return tx.AccessCodes().Create(ctx, code)
}

type accessCodeUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver CustomerResolver
	issuer   AccessCodeIssuer
	settings shared.BookingSettings
	clock    clock.Clock
}

func NewAccessCodeUseCase(
	uow shared.UnitOfWork,
	resolver CustomerResolver,
	issuer AccessCodeIssuer,
	settings shared.BookingSettings,
	clock clock.Clock,
) AccessCodeCommands {
	return &accessCodeUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		issuer:   issuer,
		settings: settings,
		clock:    clock,
	}
}

func (a *accessCodeUseCaseImpl) CreateStandalone(
	ctx context.Context,
	spaceID int64,
	req reqdto.CreateStandaloneAccessCodeRequest,
) (*AccessCodeResult, error) {
	loc := a.settings.Location

	start, err := parseFutureDate(req.StartDate, loc, a.clock)
	if err != nil {
		return nil, err
	}
	end, err := time.ParseInLocation(shared.DateLayout, req.EndDate, loc)
	if err != nil {
		return nil, shared.ErrInvalidDateFormat.WithCause(err)
	}
	if end.Before(start) {
		return nil, shared.ErrInvalidDateRange
	}

	contact, err := contactFromRequest(req.Customer)
	if err != nil {
		return nil, err
	}

	validFrom := start
	validTo := clock.At(end, 24*time.Hour-time.Second, loc)

	var (
		result   AccessCodeResult
		attempts issuedCodes
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := a.resolver.Resolve(ctx, tx, spaceID, contact)
		if err != nil {
			return err
		}

		code, err := a.issuer.Issue(ctx, tx, IssueParams{
			CustomerID: cust.ID(),
			SpaceID:    spaceID,
			ValidFrom:  validFrom,
			ValidTo:    validTo,
		})
		if err != nil {
			return err
		}
		attempts.add(code)

		result = AccessCodeResult{AccessCode: code, Customer: cust}
		return nil
	})
	attempts.settle(ctx, a.issuer, committedCode(&result, err))
	if err != nil {
		return nil, shared.Internal(err)
	}
	return &result, nil
}

func (a *accessCodeUseCaseImpl) CreateForProduct(
	ctx context.Context,
	spaceID int64,
	req reqdto.CreateProductAccessCodeRequest,
) (*AccessCodeResult, error) {
	loc := a.settings.Location

	p, err := loadSpaceProduct(ctx, a.uow.CommandReads(), spaceID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if p.IsMeetingRoom() {
		return nil, shared.ErrWrongProductType.WithMessage("meeting room products are booked through meeting-room-booking")
	}
	if !p.IsPublished() {
		return nil, shared.ErrProductNotPublished
	}

	start, err := parseFutureDate(req.StartDate, loc, a.clock)
	if err != nil {
		return nil, err
	}
	if !p.AvailableOn(start) {
		return nil, shared.ErrProductNotYetAvailable
	}

	ent, err := interpret(p)
	if err != nil {
		return nil, err
	}

	contact, err := contactFromRequest(req.Customer)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	// Hour-based products bought for today start now rather than at midnight.
	anchor := start
	if start.Equal(clock.Today(a.clock, loc)) {
		anchor = now.In(loc)
	}
	validFrom, validTo := ent.Window(anchor)

	var (
		result   AccessCodeResult
		attempts issuedCodes
	)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := a.resolver.Resolve(ctx, tx, spaceID, contact)
		if err != nil {
			return err
		}

		sub, err := createSubscription(ctx, tx, spaceID, cust.ID(), p.ID(), ent, validFrom, validTo, now)
		if err != nil {
			return err
		}

		subID := sub.ID()
		code, err := a.issuer.Issue(ctx, tx, IssueParams{
			CustomerID:     cust.ID(),
			SpaceID:        spaceID,
			SubscriptionID: &subID,
			ValidFrom:      validFrom,
			ValidTo:        validTo,
		})
		if err != nil {
			return err
		}
		attempts.add(code)

		result = AccessCodeResult{AccessCode: code, Customer: cust}
		return nil
	})
	attempts.settle(ctx, a.issuer, committedCode(&result, err))
	if err != nil {
		return nil, shared.Internal(err)
	}
	return &result, nil
}
