//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemQueriesFixture struct {
	store *fake.Store
	q     queries.ItemQueries

	ownerID uuid.UUID
	itemID  uuid.UUID
}

func newItemQueriesFixture(t *testing.T) *itemQueriesFixture {
	t.Helper()

	store := fake.NewStore()
	owner, err := builder.NewUserBuilder().BuildReconstructed()
	require.NoError(t, err)
	store.AddUser(owner)

	ib := builder.NewItemBuilder()
	ib.OwnerID = owner.ID()
	store.AddItem(ib.BuildReconstructed())

	return &itemQueriesFixture{
		store:   store,
		q:       queries.NewItemQueries(store.Items(), store.Bookings(), store.Comments(), clock.NewMockClock(refTime)),
		ownerID: owner.ID(),
		itemID:  ib.ID,
	}
}

func (f *itemQueriesFixture) seedApprovedBooking(startOffset, endOffset time.Duration) *booking.Booking {
	b := builder.NewBookingBuilder()
	b.ItemID = f.itemID
	b.ItemOwnerID = f.ownerID
	b.Start = refTime.Add(startOffset)
	b.End = refTime.Add(endOffset)
	b.Status = booking.StatusApproved.String()
	bk := b.BuildReconstructed()
	f.store.AddBooking(bk)
	return bk
}

func TestItemQueriesGet(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees booking summary", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		last := f.seedApprovedBooking(-48*time.Hour, -24*time.Hour)
		next := f.seedApprovedBooking(24*time.Hour, 48*time.Hour)

		view, err := f.q.Get(ctx, f.itemID, f.ownerID)
		require.NoError(t, err)
		require.NotNil(t, view.LastBooking)
		require.NotNil(t, view.NextBooking)
		assert.Equal(t, last.ID(), view.LastBooking.ID)
		assert.Equal(t, next.ID(), view.NextBooking.ID)
	})

	t.Run("non-owner gets no booking summary", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		f.seedApprovedBooking(-48*time.Hour, -24*time.Hour)

		view, err := f.q.Get(ctx, f.itemID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newItemQueriesFixture(t)

		_, err := f.q.Get(ctx, uuid.New(), f.ownerID)
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestItemQueriesSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("picks latest past and earliest future approved booking", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		f.seedApprovedBooking(-96*time.Hour, -72*time.Hour)
		last := f.seedApprovedBooking(-48*time.Hour, -24*time.Hour)
		next := f.seedApprovedBooking(24*time.Hour, 48*time.Hour)
		f.seedApprovedBooking(72*time.Hour, 96*time.Hour)

		summary, err := f.q.Summarize(ctx, f.itemID)
		require.NoError(t, err)
		require.NotNil(t, summary.Last)
		require.NotNil(t, summary.Next)
		assert.Equal(t, last.ID(), summary.Last.ID)
		assert.Equal(t, next.ID(), summary.Next.ID)
	})

	t.Run("absence of either side is a nil, not an error", func(t *testing.T) {
		f := newItemQueriesFixture(t)

		summary, err := f.q.Summarize(ctx, f.itemID)
		require.NoError(t, err)
		assert.Nil(t, summary.Last)
		assert.Nil(t, summary.Next)
	})
}

func TestItemQueriesSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query returns empty result", func(t *testing.T) {
		f := newItemQueriesFixture(t)

		for _, text := range []string{"", "   "} {
			views, err := f.q.Search(ctx, text)
			require.NoError(t, err)
			assert.Empty(t, views)
		}
	})

	t.Run("matches name and description of available items only", func(t *testing.T) {
		f := newItemQueriesFixture(t)

		hidden := builder.NewItemBuilder()
		hidden.Name = "Cordless saw"
		hidden.Available = false
		f.store.AddItem(hidden.BuildReconstructed())

		views, err := f.q.Search(ctx, "cordless")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, f.itemID, views[0].ID)

		views, err = f.q.Search(ctx, "batteries")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}

func TestItemQueriesListByOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("every owned item carries its summary", func(t *testing.T) {
		f := newItemQueriesFixture(t)
		last := f.seedApprovedBooking(-48*time.Hour, -24*time.Hour)

		views, err := f.q.ListByOwner(ctx, f.ownerID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.NotNil(t, views[0].LastBooking)
		assert.Equal(t, last.ID(), views[0].LastBooking.ID)
	})

	t.Run("no items is an empty list", func(t *testing.T) {
		f := newItemQueriesFixture(t)

		views, err := f.q.ListByOwner(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
