//go:build unit

package customer_test

import (
	"strings"
	"testing"
	"time"

	"coworking-booking/internal/domain/customer"
	"coworking-booking/internal/pkg/ptr"
	"coworking-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func TestContact(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewCustomerBuilder().BuildContact()
		require.NoError(t, err)
		assert.Equal(t, "Ada", c.Name.First())
		assert.Equal(t, "ada@example.com", c.Email.Normalized())
		assert.Nil(t, c.Phone)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "names are trimmed",
				mutate: func(b *builder.CustomerBuilder) { b.FirstName = "  Ada  " },
			},
			{
				name:   "empty first name",
				mutate: func(b *builder.CustomerBuilder) { b.FirstName = "   " },
				errIs:  customer.ErrEmptyName,
			},
			{
				name:   "empty last name",
				mutate: func(b *builder.CustomerBuilder) { b.LastName = "" },
				errIs:  customer.ErrEmptyName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.CustomerBuilder) { b.LastName = strings.Repeat("a", customer.MaxNameLength) },
			},
			{
				name:   "name too long",
				mutate: func(b *builder.CustomerBuilder) { b.LastName = strings.Repeat("a", customer.MaxNameLength+1) },
				errIs:  customer.ErrNameTooLong,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.CustomerBuilder) { b.Email = "not-an-email" },
				errIs:  customer.ErrInvalidEmail,
			},
			{
				name:   "email too long",
				mutate: func(b *builder.CustomerBuilder) { b.Email = strings.Repeat("a", 250) + "@example.com" },
				errIs:  customer.ErrInvalidEmail,
			},
			{
				name:   "phone with plus",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = ptr.Of("+573001234567") },
			},
			{
				name:   "phone with 15 digits",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = ptr.Of("123456789012345") },
			},
			{
				name:   "phone too short",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = ptr.Of("123456789") },
				errIs:  customer.ErrInvalidPhone,
			},
			{
				name:   "phone too long",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = ptr.Of("1234567890123456") },
				errIs:  customer.ErrInvalidPhone,
			},
			{
				name:   "phone with separators",
				mutate: func(b *builder.CustomerBuilder) { b.Phone = ptr.Of("300-123-4567") },
				errIs:  customer.ErrInvalidPhone,
			},
		})
	})
}

func TestCustomer(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("new customer is verified", func(t *testing.T) {
		c, err := builder.NewCustomerBuilder().BuildDomain(now)
		require.NoError(t, err)
		require.NotNil(t, c.EmailVerifiedAt())
		assert.Equal(t, now, *c.EmailVerifiedAt())
		assert.False(t, c.IsDeleted())
		assert.Zero(t, c.ID())
	})

	t.Run("omitted phone keeps the stored one", func(t *testing.T) {
		c := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.Phone = ptr.Of("3001234567")
		}).BuildReconstructed()

		contact, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.FirstName = "Grace"
		}).BuildContact()
		require.NoError(t, err)

		c.UpdateContact(contact, now)
		assert.Equal(t, "Grace", c.FirstName())
		require.NotNil(t, c.Phone())
		assert.Equal(t, "3001234567", *c.Phone())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("supplied phone overwrites", func(t *testing.T) {
		c := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.Phone = ptr.Of("3001234567")
		}).BuildReconstructed()

		contact, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.Phone = ptr.Of("+573009999999")
		}).BuildContact()
		require.NoError(t, err)

		c.UpdateContact(contact, now)
		assert.Equal(t, "+573009999999", *c.Phone())
	})

	t.Run("restore clears the deletion marker", func(t *testing.T) {
		deleted := now.Add(-24 * time.Hour)
		c := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.DeletedAt = &deleted
		}).BuildReconstructed()
		require.True(t, c.IsDeleted())

		contact, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
			b.LastName = "Hopper"
		}).BuildContact()
		require.NoError(t, err)

		c.Restore(contact, now)
		assert.False(t, c.IsDeleted())
		assert.Equal(t, "Hopper", c.LastName())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewCustomerBuilder().With(c.mutate).BuildContact()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
