package shared

import (
	"context"
	"time"

	"coworking-booking/internal/domain/accesscode"
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/domain/product"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/domain/subscription"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Customers() CustomerRepository
	Subscriptions() SubscriptionRepository
	Credits() CreditRepository
	Bookings() BookingRepository
	AccessCodes() AccessCodeRepository
	Lifecycle() LifecycleRepository
	Reads() CommandReads
}

type CommandReads interface {
	ProductByID(ctx context.Context, id int64) (*product.Product, error)
	MeetingRoomByID(ctx context.Context, id int64) (*space.MeetingRoom, error)
	ActiveBookedSlots(ctx context.Context, meetingRoomID int64, date time.Time) ([]booking.Slot, error)
}

type CustomerRepository interface {
	// FindByEmail matches case-insensitively and includes soft-deleted customers.
	FindByEmail(ctx context.Context, spaceID int64, email string) (*customer.Customer, error)
	// Upsert inserts c or, when the email already exists in the space, refreshes that row.
	Upsert(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *subscription.Subscription) (int64, error)
}

type CreditRepository interface {
	Create(ctx context.Context, c subscription.Credit) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
}

type AccessCodeRepository interface {
	HasLiveCode(ctx context.Context, customerID, spaceID int64) (bool, error)
	Create(ctx context.Context, code *accesscode.AccessCode) error
	// CreatePrimary reports false, without inserting, when a live primary already exists.
	CreatePrimary(ctx context.Context, code *accesscode.AccessCode) (bool, error)
}

type LifecycleRepository interface {
	ActivateDue(ctx context.Context, now time.Time) (int64, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
	PromotePrimaries(ctx context.Context, now time.Time) (int64, error)
}
