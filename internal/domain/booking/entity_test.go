//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.ItemOwnerID, actual.ItemOwnerID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, b.Start, actual.Window().Start())
		assert.Equal(t, b.End, actual.Window().End())
	})

	t.Run("creation guard", func(t *testing.T) {
		runCreateCases(t, []createCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.Available = false },
				errIs:  errs.ErrItemNotAvailable,
			},
			{
				name:   "owner booking own item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.ItemOwnerID },
				errIs:  errs.ErrSelfBooking,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(-time.Hour) },
				errIs:  errs.ErrInvalidTimeWindow,
			},
			{
				name:   "zero-length window",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start },
				errIs:  errs.ErrInvalidTimeWindow,
			},
			{
				name:   "start in the past",
				mutate: func(b *builder.BookingBuilder) { b.Start = b.Now.Add(-time.Minute) },
				errIs:  errs.ErrInvalidTimeWindow,
			},
			{
				name:   "start exactly at reference time is allowed",
				mutate: func(b *builder.BookingBuilder) { b.Start = b.Now },
			},
			{
				name: "availability is checked before self-booking",
				mutate: func(b *builder.BookingBuilder) {
					b.Available = false
					b.BookerID = b.ItemOwnerID
				},
				errIs: errs.ErrItemNotAvailable,
			},
		})
	})
}

func TestDecide(t *testing.T) {
	t.Run("owner approves", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		bk := b.BuildReconstructed()

		require.NoError(t, bk.Decide(b.ItemOwnerID, true))
		assert.Equal(t, booking.StatusApproved, bk.Status())
	})

	t.Run("owner rejects", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		bk := b.BuildReconstructed()

		require.NoError(t, bk.Decide(b.ItemOwnerID, false))
		assert.Equal(t, booking.StatusRejected, bk.Status())
	})

	t.Run("second decide always fails regardless of flag", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		bk := b.BuildReconstructed()
		require.NoError(t, bk.Decide(b.ItemOwnerID, true))

		err := bk.Decide(b.ItemOwnerID, false)
		assert.ErrorIs(t, err, errs.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, bk.Status())
	})

	t.Run("non-owner cannot decide", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		bk := b.BuildReconstructed()

		err := bk.Decide(b.BookerID, true)
		assert.ErrorIs(t, err, errs.ErrNotOwner)
		assert.Equal(t, booking.StatusWaiting, bk.Status())
	})

	t.Run("decided booking reports AlreadyDecided even to non-owners", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.Status = booking.StatusRejected.String()
		bk := b.BuildReconstructed()

		err := bk.Decide(uuid.New(), true)
		assert.ErrorIs(t, err, errs.ErrAlreadyDecided)
	})
}

func TestViewableBy(t *testing.T) {
	b := builder.NewBookingBuilder()
	bk := b.BuildReconstructed()

	assert.True(t, bk.ViewableBy(b.BookerID))
	assert.True(t, bk.ViewableBy(b.ItemOwnerID))
	assert.False(t, bk.ViewableBy(uuid.New()))
}

func runCreateCases(t *testing.T, cases []createCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
