//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/domain/subscription"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/pgquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubscriptionQueries struct {
	mock.Mock
}

func (m *MockSubscriptionQueries) CreateSubscription(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateSubscriptionParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestSubscriptionRepository_Create(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	ent, err := product.Interpret(product.HotDeskSettings{
		Duration:         5,
		DurationUnit:     product.Days,
		MeetingRoomHours: 2,
		Weekdays:         []space.Weekday{space.Monday, space.Friday},
	})
	require.NoError(t, err)
	from, to := ent.Window(now)
	sub, err := subscription.New(1, 2, 10, ent, from, to, now)
	require.NoError(t, err)

	t.Run("maps the entitlement columns", func(t *testing.T) {
		q := new(MockSubscriptionQueries)
		q.On("CreateSubscription", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgquery.CreateSubscriptionParams) bool {
			return p.SpaceID == 1 &&
				p.CustomerID == 2 &&
				p.ProductID == 10 &&
				assert.ObjectsAreEqual([]int16{1, 5}, p.AllowedWeekdays) &&
				p.MeetingRoomHours == 2 &&
				p.DurationDays == 5 &&
				p.Status == "active" &&
				p.StartsAt.Time.Equal(from) &&
				p.EndsAt.Time.Equal(to)
		})).Return(int64(42), nil)

		id, err := NewSubscriptionRepository(q, mockDBTX{}).Create(context.Background(), sub)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		q.AssertExpectations(t)
	})

	t.Run("wraps database failures", func(t *testing.T) {
		q := new(MockSubscriptionQueries)
		q.On("CreateSubscription", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := NewSubscriptionRepository(q, mockDBTX{}).Create(context.Background(), sub)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
