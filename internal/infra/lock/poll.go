package lock

import (
	"context"
	"time"

	"coworking-booking/internal/usecase/shared"
)

const defaultPollInterval = 25 * time.Millisecond

// poll calls try until it reports success, the timeout passes or ctx ends. try always
// runs at least once.
func poll(ctx context.Context, timeout, interval time.Duration, try func(ctx context.Context) (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := try(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return shared.ErrLockTimeout
		}

		wait := interval
		if remaining < wait {
			wait = remaining
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
