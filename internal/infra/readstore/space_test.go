//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSpaceReadQueries struct {
	mock.Mock
}

func (m *MockSpaceReadQueries) GetSpace(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.GetSpaceRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.GetSpaceRow), args.Error(1)
}

func (m *MockSpaceReadQueries) ListSpaceAmenities(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.Amenity, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).([]pgquery.Amenity), args.Error(1)
}

func (m *MockSpaceReadQueries) ListSpaceHours(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.SpaceHour, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).([]pgquery.SpaceHour), args.Error(1)
}

func (m *MockSpaceReadQueries) ListSpacePhotos(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.SpacePhoto, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).([]pgquery.SpacePhoto), args.Error(1)
}

func (m *MockSpaceReadQueries) ListMeetingRooms(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.MeetingRoom, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).([]pgquery.MeetingRoom), args.Error(1)
}

func (m *MockSpaceReadQueries) ListProducts(ctx context.Context, db pgquery.DBTX, spaceID int64) ([]pgquery.Product, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).([]pgquery.Product), args.Error(1)
}

func (m *MockSpaceReadQueries) GetSpaceLegal(ctx context.Context, db pgquery.DBTX, spaceID int64) (pgquery.SpaceLegal, error) {
	args := m.Called(ctx, db, spaceID)
	return args.Get(0).(pgquery.SpaceLegal), args.Error(1)
}

type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) { return nil, nil }
func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row        { return nil }

func productRow(id int64, accessType string, accessible []int64) pgquery.Product {
	return pgquery.Product{
		ID:               id,
		SpaceID:          1,
		Name:             "Hot desk monthly",
		Price:            "150.00",
		SeatingOptionID:  2,
		Settings:         []byte(`{"duration":1,"duration_unit":3,"weekdays":[1,2,3,4,5],"persons":1,"meeting_room_hours":4}`),
		AccessType:       accessType,
		AccessibleSpaces: accessible,
		IsPublished:      true,
		CreatedAt:        pgconv.TimeToPgtype(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		UpdatedAt:        pgconv.TimeToPgtype(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestSpaceReadStore_ListProducts(t *testing.T) {
	q := new(MockSpaceReadQueries)
	q.On("ListProducts", mock.Anything, mock.Anything, int64(1)).Return([]pgquery.Product{
		productRow(1, "current_space", nil),
		productRow(2, "selected_spaces", nil), // rejected: no list
		productRow(3, "all_spaces", []int64{4, 5}),
	}, nil)

	got, err := NewSpaceReadStore(q, mockDBTX{}).ListProducts(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID())
	assert.Equal(t, int64(3), got[1].ID())
	assert.Nil(t, got[1].AccessibleSpaces())
}

func TestSpaceReadStore_ListHours(t *testing.T) {
	nine := pgtype.Time{Microseconds: (9 * time.Hour).Microseconds(), Valid: true}
	five := pgtype.Time{Microseconds: (17 * time.Hour).Microseconds(), Valid: true}

	q := new(MockSpaceReadQueries)
	q.On("ListSpaceHours", mock.Anything, mock.Anything, int64(1)).Return([]pgquery.SpaceHour{
		{ID: 1, Weekday: 1, OpenTime: nine, CloseTime: five},
		{ID: 2, Weekday: 2, OpenTime: five, CloseTime: nine}, // inverted window
		{ID: 7, Weekday: 7, Closed: true},
	}, nil)

	got, err := NewSpaceReadStore(q, mockDBTX{}).ListHours(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Weekday().Int())
	assert.Equal(t, 7, got[1].Weekday().Int())
}

func TestSpaceReadStore_FindLegal(t *testing.T) {
	tests := []struct {
		name     string
		row      pgquery.SpaceLegal
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "found", row: pgquery.SpaceLegal{ID: 9, Terms: pgtype.Text{String: "terms", Valid: true}}},
		{name: "missing", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockSpaceReadQueries)
			q.On("GetSpaceLegal", mock.Anything, mock.Anything, int64(1)).Return(tt.row, tt.mockErr)

			got, err := NewSpaceReadStore(q, mockDBTX{}).FindLegal(context.Background(), 1)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Terms)
			assert.Equal(t, "terms", *got.Terms)
			assert.Nil(t, got.PrivacyPolicy)
		})
	}
}

func TestToMeetingRoomView(t *testing.T) {
	row := pgquery.MeetingRoom{
		ID:            3,
		Name:          "Board room",
		Capacity:      8,
		AvailableFrom: pgtype.Time{Microseconds: (8*time.Hour + 30*time.Minute).Microseconds(), Valid: true},
		AvailableTo:   pgtype.Time{Microseconds: (18 * time.Hour).Microseconds(), Valid: true},
		HasProjector:  true,
	}

	v := toMeetingRoomView(row)

	assert.Equal(t, "08:30:00", v.AvailableFrom)
	assert.Equal(t, "18:00:00", v.AvailableTo)
	assert.True(t, v.Features.HasProjector)
	assert.False(t, v.Features.HasWhiteboard)
}
