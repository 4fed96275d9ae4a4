package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// generations outlive their date by this much; past dates are never queried.
const generationRetention = 48 * time.Hour

// RedisAvailabilityCache stores the booked slots of a room and day as a JSON list of
// "HH:MM - HH:MM" labels under "<key>:g<generation>". The generation counter lives
// under "<key>:gen" and is bumped by Invalidate.
type RedisAvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client redis.Cmdable, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func generationKey(key shared.AvailabilityKey) string {
	return key.String() + ":gen"
}

func dataKey(key shared.AvailabilityKey, generation int64) string {
	return key.String() + ":g" + strconv.FormatInt(generation, 10)
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, key shared.AvailabilityKey) (shared.AvailabilitySnapshot, error) {
	gen, err := c.client.Get(ctx, generationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		return shared.AvailabilitySnapshot{}, errs.Wrap(err, "read availability generation")
	}

	snap := shared.AvailabilitySnapshot{Generation: gen}
	raw, err := c.client.Get(ctx, dataKey(key, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return snap, nil
	}
	if err != nil {
		return snap, errs.Wrap(err, "read availability cache")
	}

	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return snap, errs.Wrap(err, "decode availability cache")
	}

	slots := make([]booking.Slot, 0, len(labels))
	for _, label := range labels {
		s, err := booking.ParseSlot(label)
		if err != nil {
			return snap, errs.Wrap(err, "decode availability cache")
		}
		slots = append(slots, s)
	}
	snap.Booked, snap.Hit = slots, true
	return snap, nil
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, key shared.AvailabilityKey, generation int64, booked []booking.Slot) error {
	raw, err := json.Marshal(booking.FormatSlots(booked))
	if err != nil {
		return errs.Wrap(err, "encode availability cache")
	}
	if err := c.client.Set(ctx, dataKey(key, generation), string(raw), c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write availability cache")
	}
	return nil
}

// Invalidate moves readers to a fresh generation. Entries of older generations are
// left to expire with their ttl.
func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, key shared.AvailabilityKey) error {
	gk := generationKey(key)
	if err := c.client.Incr(ctx, gk).Err(); err != nil {
		return errs.Wrap(err, "invalidate availability cache")
	}
	if err := c.client.ExpireAt(ctx, gk, key.Date.Add(generationRetention)).Err(); err != nil {
		return errs.Wrap(err, "expire availability generation")
	}
	return nil
}

// NoopAvailabilityCache always misses.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, shared.AvailabilityKey) (shared.AvailabilitySnapshot, error) {
	return shared.AvailabilitySnapshot{}, nil
}

func (NoopAvailabilityCache) Set(context.Context, shared.AvailabilityKey, int64, []booking.Slot) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(context.Context, shared.AvailabilityKey) error {
	return nil
}
