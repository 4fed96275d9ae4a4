//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"
	"coworking-booking/tests/common/builder"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errNotFound = infra.WrapRepoErr("not found", pgx.ErrNoRows)

func dur(d time.Duration) *time.Duration { return &d }

func TestSpaceQueries(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*queriesmock.MockSpaceReadStore, queries.SpaceQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSpaceReadStore(ctrl)
		return store, queries.NewSpaceQueries(store)
	}

	t.Run("GetSpace attaches amenities", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindSpace(gomock.Any(), int64(1)).Return(&queries.SpaceView{ID: 1, Name: "Loft"}, nil)
		store.EXPECT().ListAmenities(gomock.Any(), int64(1)).Return([]queries.AmenityView{{ID: 4, Name: "Coffee"}}, nil)

		v, err := q.GetSpace(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Loft", v.Name)
		assert.Equal(t, []queries.AmenityView{{ID: 4, Name: "Coffee"}}, v.Amenities)
	})

	t.Run("GetSpace maps a missing row to not found", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindSpace(gomock.Any(), int64(1)).Return(nil, errNotFound)

		_, err := q.GetSpace(ctx, 1)

		assert.ErrorIs(t, err, shared.ErrSpaceNotFound)
	})

	t.Run("GetHours fills the week and formats times", func(t *testing.T) {
		store, q := setup(t)
		monday, err := space.NewSpaceHour(space.SpaceHourParams{
			ID: 1, Weekday: 1, OpenTime: dur(9 * time.Hour), CloseTime: dur(17*time.Hour + 30*time.Minute),
		})
		require.NoError(t, err)
		friday, err := space.NewSpaceHour(space.SpaceHourParams{ID: 5, Weekday: 5, NonStop: true})
		require.NoError(t, err)
		store.EXPECT().ListHours(gomock.Any(), int64(1)).Return([]*space.SpaceHour{friday, monday}, nil)

		hours, err := q.GetHours(ctx, 1)

		require.NoError(t, err)
		require.Len(t, hours, 7)
		assert.Equal(t, 1, hours[0].Weekday)
		assert.Equal(t, "09:00:00", *hours[0].OpenTime)
		assert.Equal(t, "17:30:00", *hours[0].CloseTime)
		assert.True(t, hours[1].Closed)
		assert.Nil(t, hours[1].OpenTime)
		assert.True(t, hours[4].NonStop)
		assert.Equal(t, 7, hours[6].Weekday)
	})

	t.Run("GetProducts renders settings and seating option", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().ListProducts(gomock.Any(), int64(1)).Return([]*product.Product{
			builder.NewProductBuilder().BuildDomain(),
		}, nil)

		products, err := q.GetProducts(ctx, 1)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(10), products[0].ID)
		assert.Equal(t, product.HotDesk.ID(), products[0].SeatingOption.ID)
		assert.IsType(t, product.HotDeskSettings{}, products[0].Settings)
		assert.Nil(t, products[0].AvailableFrom)
	})

	t.Run("GetLegal maps a missing row to not found", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindLegal(gomock.Any(), int64(1)).Return(nil, errNotFound)

		_, err := q.GetLegal(ctx, 1)

		assert.ErrorIs(t, err, shared.ErrLegalNotFound)
	})

	t.Run("list failures are database errors", func(t *testing.T) {
		store, q := setup(t)
		dbErr := infra.WrapRepoErr("boom", assert.AnError)
		store.EXPECT().ListPhotos(gomock.Any(), int64(1)).Return(nil, dbErr)
		store.EXPECT().ListMeetingRooms(gomock.Any(), int64(1)).Return(nil, dbErr)

		_, err := q.GetPhotos(ctx, 1)
		assert.ErrorIs(t, err, shared.ErrDatabaseOperationFailed)
		_, err = q.GetMeetingRooms(ctx, 1)
		assert.ErrorIs(t, err, shared.ErrDatabaseOperationFailed)
	})
}
