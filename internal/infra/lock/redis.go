package lock

import (
	"context"
	"time"

	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "lock:"

// compare-and-delete so a lease never removes a key re-acquired by someone else
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

var ErrLeaseLost = errs.New("lease expired before release")

// RedisLocker leases keys with SET NX PX. The TTL bounds how long a crashed holder
// can block a key.
type RedisLocker struct {
	client       redis.Cmdable
	ttl          time.Duration
	pollInterval time.Duration
	newToken     func() string
}

func NewRedisLocker(client redis.Cmdable, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client:       client,
		ttl:          ttl,
		pollInterval: defaultPollInterval,
		newToken:     uuid.NewString,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (shared.Lease, error) {
	redisKey := redisKeyPrefix + key
	token := l.newToken()

	err := poll(ctx, timeout, l.pollInterval, func(ctx context.Context) (bool, error) {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return false, errs.Wrap(err, "redis set nx")
		}
		return ok, nil
	})
	if err != nil {
		return nil, err
	}

	return &redisLease{client: l.client, key: redisKey, token: token}, nil
}

type redisLease struct {
	client   redis.Cmdable
	key      string
	token    string
	released bool
}

func (le *redisLease) Release(ctx context.Context) error {
	if le.released {
		return nil
	}
	le.released = true

	n, err := le.client.Eval(ctx, releaseScript, []string{le.key}, le.token).Int64()
	if err != nil {
		return errs.Wrap(err, "redis release lease")
	}
	if n == 0 {
		return ErrLeaseLost
	}
	return nil
}
