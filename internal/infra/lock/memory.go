package lock

import (
	"context"
	"sync"
	"time"

	"coworking-booking/internal/usecase/shared"
)

// MemoryLocker serializes holders of the same key inside one process.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*memorySlot
}

type memorySlot struct {
	sem  chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*memorySlot)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, timeout time.Duration) (shared.Lease, error) {
	slot := l.ref(key)

	// fast path so a zero timeout still gets one attempt
	select {
	case slot.sem <- struct{}{}:
		return &memoryLease{locker: l, key: key, slot: slot}, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case slot.sem <- struct{}{}:
		return &memoryLease{locker: l, key: key, slot: slot}, nil
	case <-timer.C:
		l.unref(key, slot)
		return nil, shared.ErrLockTimeout
	case <-ctx.Done():
		l.unref(key, slot)
		return nil, ctx.Err()
	}
}

func (l *MemoryLocker) ref(key string) *memorySlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = &memorySlot{sem: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.refs++
	return slot
}

func (l *MemoryLocker) unref(key string, slot *memorySlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, key)
	}
}

type memoryLease struct {
	locker *MemoryLocker
	key    string
	slot   *memorySlot
	once   sync.Once
}

func (le *memoryLease) Release(_ context.Context) error {
	le.once.Do(func() {
		<-le.slot.sem
		le.locker.unref(le.key, le.slot)
	})
	return nil
}
