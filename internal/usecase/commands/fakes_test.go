//go:build unit

package commands_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/domain/subscription"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory unit of work. Transactions run one at a time and roll
// back every write when fn fails.
type memStore struct {
	mu sync.Mutex

	products  map[int64]*product.Product
	rooms     map[int64]*space.MeetingRoom
	customers []*customer.Customer

	subscriptions []*subscription.Subscription
	credits       []subscription.Credit
	bookings      []*booking.Booking
	codes         []*accesscode.AccessCode

	// knobs
	hideBookedSlots bool
	primaryTaken    bool
	findCustomerErr error
	lifecycleErr    error
	lifecycleCalls  []string
	commits         int
	// retries reruns fn this many times as if the commit hit a serialization failure
	retries   int
	commitErr error
}

func newMemStore() *memStore {
	return &memStore{
		products: map[int64]*product.Product{},
		rooms:    map[int64]*space.MeetingRoom{},
	}
}

func (s *memStore) addProduct(p *product.Product) *memStore {
	s.products[p.ID()] = p
	return s
}

func (s *memStore) addRoom(r *space.MeetingRoom) *memStore {
	s.rooms[r.ID] = r
	return s
}

func (s *memStore) addCustomer(c *customer.Customer) *memStore {
	s.customers = append(s.customers, c)
	return s
}

type memSnapshot struct {
	customers     []customer.Customer
	subscriptions int
	credits       int
	bookings      int
	codes         int
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		subscriptions: len(s.subscriptions),
		credits:       len(s.credits),
		bookings:      len(s.bookings),
		codes:         len(s.codes),
	}
	for _, c := range s.customers {
		snap.customers = append(snap.customers, *c)
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.customers = s.customers[:0]
	for i := range snap.customers {
		c := snap.customers[i]
		s.customers = append(s.customers, &c)
	}
	s.subscriptions = s.subscriptions[:snap.subscriptions]
	s.credits = s.credits[:snap.credits]
	s.bookings = s.bookings[:snap.bookings]
	s.codes = s.codes[:snap.codes]
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; ; attempt++ {
		snap := s.snapshot()
		if err := fn(ctx, memTx{s}); err != nil {
			s.restore(snap)
			return err
		}
		if attempt < s.retries {
			s.restore(snap)
			continue
		}
		if s.commitErr != nil {
			s.restore(snap)
			return s.commitErr
		}
		s.commits++
		return nil
	}
}

func (s *memStore) CommandReads() shared.CommandReads {
	return lockedReads{s}
}

func (s *memStore) activeBookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookings)
}

func (s *memStore) accessCodes() []*accesscode.AccessCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.codes)
}

var errNoRows = infra.WrapRepoErr("not found", pgx.ErrNoRows)

func (s *memStore) productByID(id int64) (*product.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, errNoRows
	}
	return p, nil
}

func (s *memStore) roomByID(id int64) (*space.MeetingRoom, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, errNoRows
	}
	return r, nil
}

func (s *memStore) bookedSlots(roomID int64, date time.Time) []booking.Slot {
	var out []booking.Slot
	for _, b := range s.bookings {
		if b.MeetingRoomID() == roomID && b.Date().Equal(date) && b.Status() == booking.StatusActive {
			out = append(out, b.Slot())
		}
	}
	return out
}

type lockedReads struct{ s *memStore }

func (r lockedReads) ProductByID(_ context.Context, id int64) (*product.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.productByID(id)
}

func (r lockedReads) MeetingRoomByID(_ context.Context, id int64) (*space.MeetingRoom, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.roomByID(id)
}

func (r lockedReads) ActiveBookedSlots(_ context.Context, roomID int64, date time.Time) ([]booking.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.bookedSlots(roomID, date), nil
}

// memTx methods run with memStore.mu held by Within.
type memTx struct{ s *memStore }

func (t memTx) Customers() shared.CustomerRepository         { return memCustomers(t) }
func (t memTx) Subscriptions() shared.SubscriptionRepository { return memSubscriptions(t) }
func (t memTx) Credits() shared.CreditRepository             { return memCredits(t) }
func (t memTx) Bookings() shared.BookingRepository           { return memBookings(t) }
func (t memTx) AccessCodes() shared.AccessCodeRepository     { return memAccessCodes(t) }
func (t memTx) Lifecycle() shared.LifecycleRepository        { return memLifecycle(t) }
func (t memTx) Reads() shared.CommandReads                   { return txReads(t) }

type txReads memTx

func (r txReads) ProductByID(_ context.Context, id int64) (*product.Product, error) {
	return r.s.productByID(id)
}

func (r txReads) MeetingRoomByID(_ context.Context, id int64) (*space.MeetingRoom, error) {
	return r.s.roomByID(id)
}

func (r txReads) ActiveBookedSlots(_ context.Context, roomID int64, date time.Time) ([]booking.Slot, error) {
	if r.s.hideBookedSlots {
		return nil, nil
	}
	return r.s.bookedSlots(roomID, date), nil
}

type memCustomers memTx

func (r memCustomers) FindByEmail(_ context.Context, spaceID int64, email string) (*customer.Customer, error) {
	if r.s.findCustomerErr != nil {
		return nil, r.s.findCustomerErr
	}
	for _, c := range r.s.customers {
		if c.SpaceID() == spaceID && strings.EqualFold(c.Email(), email) {
			return c, nil
		}
	}
	return nil, errNoRows
}

func (r memCustomers) Upsert(_ context.Context, c *customer.Customer) (*customer.Customer, error) {
	c.AssignID(int64(100 + len(r.s.customers)))
	r.s.customers = append(r.s.customers, c)
	return c, nil
}

func (r memCustomers) Update(_ context.Context, c *customer.Customer) error {
	for i, existing := range r.s.customers {
		if existing.ID() == c.ID() {
			r.s.customers[i] = c
			return nil
		}
	}
	return errNoRows
}

type memSubscriptions memTx

func (r memSubscriptions) Create(_ context.Context, sub *subscription.Subscription) (int64, error) {
	r.s.subscriptions = append(r.s.subscriptions, sub)
	return int64(500 + len(r.s.subscriptions)), nil
}

type memCredits memTx

func (r memCredits) Create(_ context.Context, c subscription.Credit) error {
	r.s.credits = append(r.s.credits, c)
	return nil
}

type memBookings memTx

func (r memBookings) Create(_ context.Context, b *booking.Booking) (int64, error) {
	for _, existing := range r.s.bookings {
		if existing.MeetingRoomID() == b.MeetingRoomID() &&
			existing.Date().Equal(b.Date()) &&
			existing.Slot() == b.Slot() &&
			existing.Status() == booking.StatusActive {
			return 0, infra.WrapRepoErr("failed to create booking", &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "uq_bookings_active_slot",
			})
		}
	}
	r.s.bookings = append(r.s.bookings, b)
	return int64(len(r.s.bookings)), nil
}

type memAccessCodes memTx

func (r memAccessCodes) HasLiveCode(_ context.Context, customerID, spaceID int64) (bool, error) {
	for _, c := range r.s.codes {
		if c.CustomerID() == customerID && c.SpaceID() == spaceID && c.Status().IsLive() {
			return true, nil
		}
	}
	return false, nil
}

func (r memAccessCodes) Create(_ context.Context, code *accesscode.AccessCode) error {
	r.s.codes = append(r.s.codes, code)
	return nil
}

func (r memAccessCodes) CreatePrimary(_ context.Context, code *accesscode.AccessCode) (bool, error) {
	if r.s.primaryTaken {
		return false, nil
	}
	r.s.codes = append(r.s.codes, code)
	return true, nil
}

type memLifecycle memTx

func (r memLifecycle) ActivateDue(_ context.Context, _ time.Time) (int64, error) {
	r.s.lifecycleCalls = append(r.s.lifecycleCalls, "activate")
	return 2, r.s.lifecycleErr
}

func (r memLifecycle) ExpireDue(_ context.Context, _ time.Time) (int64, error) {
	r.s.lifecycleCalls = append(r.s.lifecycleCalls, "expire")
	return 3, nil
}

func (r memLifecycle) PromotePrimaries(_ context.Context, _ time.Time) (int64, error) {
	r.s.lifecycleCalls = append(r.s.lifecycleCalls, "promote")
	return 1, nil
}

type memQR struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	saveErr error
}

func (q *memQR) DownloadURL(codeID string) string {
	return "http://localhost/qr/" + codeID + ".png"
}

func (q *memQR) Save(_ context.Context, codeID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.saveErr != nil {
		return q.saveErr
	}
	q.saved = append(q.saved, codeID)
	return nil
}

func (q *memQR) Remove(_ context.Context, codeID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removed = append(q.removed, codeID)
	return nil
}

type fixedHasher struct{ err error }

func (h fixedHasher) RandomCredentialHash() (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "$2a$10$generated", nil
}

var errBoom = errors.New("boom")
