//go:build e2e

package booking_test

import (
	"context"
	"time"

	"coworking-booking/internal/infra/lock"
	"coworking-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *BookingSuite) TestPostgresLocker() {
	s.Run("advisory lease excludes a second holder until released", func() {
		t := s.T()
		ctx := context.Background()
		locker := lock.NewPostgresLocker(s.DB)
		key := "meeting-room:7:2030-01-01"

		lease, err := locker.Acquire(ctx, key, time.Second)
		require.NoError(t, err)

		_, err = locker.Acquire(ctx, key, 100*time.Millisecond)
		assert.ErrorIs(t, err, shared.ErrLockTimeout)

		other, err := locker.Acquire(ctx, "meeting-room:7:2030-01-02", 100*time.Millisecond)
		require.NoError(t, err)
		require.NoError(t, other.Release(ctx))

		require.NoError(t, lease.Release(ctx))
		again, err := locker.Acquire(ctx, key, time.Second)
		require.NoError(t, err)
		require.NoError(t, again.Release(ctx))
	})
}
