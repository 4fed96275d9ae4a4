//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccessCodeQueries struct {
	mock.Mock
}

func (m *MockAccessCodeQueries) CountLiveAccessCodes(ctx context.Context, db pgquery.DBTX, arg pgquery.CountLiveAccessCodesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccessCodeQueries) CreateAccessCode(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateAccessCodeParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockAccessCodeQueries) CreatePrimaryAccessCode(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateAccessCodeParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAccessCode(t *testing.T, primary bool) *accesscode.AccessCode {
	t.Helper()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	subID := int64(7)
	code, err := accesscode.New(accesscode.NewParams{
		CustomerID:     100,
		SpaceID:        1,
		SubscriptionID: &subID,
		ValidFrom:      now,
		ValidTo:        now.Add(time.Hour),
		Primary:        primary,
	}, now)
	require.NoError(t, err)
	code.SetQRCodeURL("http://qr/" + code.ID() + ".png")
	return code
}

func TestAccessCodeRepository_HasLiveCode(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		mockErr  error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no live codes", count: 0, want: false},
		{name: "live codes exist", count: 2, want: true},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockAccessCodeQueries)
			q.On("CountLiveAccessCodes", mock.Anything, mock.Anything,
				pgquery.CountLiveAccessCodesParams{CustomerID: 100, SpaceID: 1}).
				Return(tt.count, tt.mockErr)

			got, err := NewAccessCodeRepository(q, mockDBTX{}).HasLiveCode(context.Background(), 100, 1)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessCodeRepository_Create(t *testing.T) {
	code := newTestAccessCode(t, false)

	q := new(MockAccessCodeQueries)
	q.On("CreateAccessCode", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.CreateAccessCodeParams) bool {
		return p.ID.Valid &&
			p.CustomerType == "user" &&
			p.SubscriptionID.Valid && p.SubscriptionID.Int64 == 7 &&
			!p.IsPrimary &&
			p.Status == string(accesscode.StatusActive) &&
			p.QrCodeDownloadUrl == code.QRCodeURL()
	})).Return(nil)

	err := NewAccessCodeRepository(q, mockDBTX{}).Create(context.Background(), code)
	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestAccessCodeRepository_CreatePrimary(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		mockErr  error
		want     bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "inserted", affected: 1, want: true},
		{name: "lost to a concurrent primary", affected: 0, want: false},
		{name: "foreign key violation", mockErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := newTestAccessCode(t, true)
			q := new(MockAccessCodeQueries)
			q.On("CreatePrimaryAccessCode", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.CreateAccessCodeParams) bool {
				return p.IsPrimary
			})).Return(tt.affected, tt.mockErr)

			got, err := NewAccessCodeRepository(q, mockDBTX{}).CreatePrimary(context.Background(), code)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
