//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	"shareit/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentCommandsFixture struct {
	store *fake.Store
	cmds  commands.CommentCommands

	authorID uuid.UUID
	ownerID  uuid.UUID
	itemID   uuid.UUID
}

func newCommentCommandsFixture(t *testing.T) *commentCommandsFixture {
	t.Helper()

	store := fake.NewStore()
	clk := clock.NewMockClock(refTime)

	author, err := builder.NewUserBuilder().BuildReconstructed()
	require.NoError(t, err)
	owner, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Email = "owner@example.com"
	}).BuildReconstructed()
	require.NoError(t, err)
	store.AddUser(author)
	store.AddUser(owner)

	ib := builder.NewItemBuilder()
	ib.OwnerID = owner.ID()
	store.AddItem(ib.BuildReconstructed())

	eligibility := commands.NewCommentEligibility(store.Bookings())

	return &commentCommandsFixture{
		store:    store,
		cmds:     commands.NewCommentCommands(store.Comments(), store, store.Items(), eligibility, clk),
		authorID: author.ID(),
		ownerID:  owner.ID(),
		itemID:   ib.ID,
	}
}

func (f *commentCommandsFixture) seedBooking(startOffset, endOffset time.Duration, status booking.Status) {
	b := builder.NewBookingBuilder()
	b.ItemID = f.itemID
	b.ItemOwnerID = f.ownerID
	b.BookerID = f.authorID
	b.Start = refTime.Add(startOffset)
	b.End = refTime.Add(endOffset)
	b.Status = status.String()
	f.store.AddBooking(b.BuildReconstructed())
}

func TestCommentCommandsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("past approved booking entitles the booker", func(t *testing.T) {
		f := newCommentCommandsFixture(t)
		f.seedBooking(-48*time.Hour, -24*time.Hour, booking.StatusApproved)

		view, err := f.cmds.Create(ctx, f.itemID, f.authorID, "Great drill")
		require.NoError(t, err)
		assert.Equal(t, "Great drill", view.Text)
		assert.Equal(t, "Alice", view.AuthorName)
		assert.Equal(t, refTime, view.CreatedAt)
	})

	t.Run("later approved bookings do not shadow an ended one", func(t *testing.T) {
		f := newCommentCommandsFixture(t)
		f.seedBooking(-48*time.Hour, -24*time.Hour, booking.StatusApproved)
		f.seedBooking(24*time.Hour, 48*time.Hour, booking.StatusApproved)

		view, err := f.cmds.Create(ctx, f.itemID, f.authorID, "Great drill")
		require.NoError(t, err)
		assert.Equal(t, "Great drill", view.Text)
	})

	t.Run("no booking at all", func(t *testing.T) {
		f := newCommentCommandsFixture(t)

		_, err := f.cmds.Create(ctx, f.itemID, f.authorID, "Great drill")
		assert.ErrorIs(t, err, errs.ErrNotEndedBooking)
	})

	t.Run("booking still running", func(t *testing.T) {
		f := newCommentCommandsFixture(t)
		f.seedBooking(-time.Hour, time.Hour, booking.StatusApproved)

		_, err := f.cmds.Create(ctx, f.itemID, f.authorID, "Great drill")
		assert.ErrorIs(t, err, errs.ErrNotEndedBooking)
	})

	t.Run("rejected booking does not qualify", func(t *testing.T) {
		f := newCommentCommandsFixture(t)
		f.seedBooking(-48*time.Hour, -24*time.Hour, booking.StatusRejected)

		_, err := f.cmds.Create(ctx, f.itemID, f.authorID, "Great drill")
		assert.ErrorIs(t, err, errs.ErrNotEndedBooking)
	})

	t.Run("blank text", func(t *testing.T) {
		f := newCommentCommandsFixture(t)
		f.seedBooking(-48*time.Hour, -24*time.Hour, booking.StatusApproved)

		for _, text := range []string{"", "   "} {
			_, err := f.cmds.Create(ctx, f.itemID, f.authorID, text)
			assert.ErrorIs(t, err, errs.ErrEmptyComment)
		}
	})

	t.Run("unknown author", func(t *testing.T) {
		f := newCommentCommandsFixture(t)

		_, err := f.cmds.Create(ctx, f.itemID, uuid.New(), "Great drill")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newCommentCommandsFixture(t)

		_, err := f.cmds.Create(ctx, uuid.New(), f.authorID, "Great drill")
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}
