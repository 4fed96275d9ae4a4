//go:build unit

package commands_test

import (
	"context"
	"testing"

	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessCodeLifecycle_Run(t *testing.T) {
	t.Run("expires before activating and promoting", func(t *testing.T) {
		store := newMemStore()
		lc := commands.NewAccessCodeLifecycle(store, clock.NewMockClock(testNow))

		res, err := lc.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, commands.LifecycleResult{Expired: 3, Activated: 2, Promoted: 1}, res)
		assert.Equal(t, []string{"expire", "activate", "promote"}, store.lifecycleCalls)
		assert.Equal(t, 1, store.commits)
	})

	t.Run("a failing step rolls back the run", func(t *testing.T) {
		store := newMemStore()
		store.lifecycleErr = errBoom
		lc := commands.NewAccessCodeLifecycle(store, clock.NewMockClock(testNow))

		res, err := lc.Run(context.Background())

		assert.ErrorIs(t, err, shared.ErrDatabaseOperationFailed)
		assert.Equal(t, commands.LifecycleResult{}, res)
		assert.Equal(t, []string{"expire", "activate"}, store.lifecycleCalls)
		assert.Zero(t, store.commits)
	})
}
