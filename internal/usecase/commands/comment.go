package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=comment.go -destination=../../../tests/mock/commands/comment.go -package=commands

// CommentEligibility decides whether a user may attach a comment to an item:
// only someone with an already-ended approved booking of that item qualifies.
// The store filters on the end date, so other bookings by the same user
// (running or upcoming) do not affect the outcome. The matching booking is
// returned as proof.
type CommentEligibility struct {
	bookings BookingRepository
}

func NewCommentEligibility(bookings BookingRepository) *CommentEligibility {
	return &CommentEligibility{bookings: bookings}
}

func (e *CommentEligibility) CheckEligible(ctx context.Context, itemID, requesterID uuid.UUID, now time.Time) (*booking.Booking, error) {
	proof, err := e.bookings.FindLatestEndedApproved(ctx, itemID, requesterID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNotEndedBooking
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if proof.BookerID() != requesterID {
		return nil, errs.ErrNotAuthorized
	}

	return proof, nil
}

type CommentCommands interface {
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	comments    CommentRepository
	users       UserRepository
	items       ItemRepository
	eligibility *CommentEligibility
	clock       clock.Clock
}

func NewCommentCommands(
	comments CommentRepository,
	users UserRepository,
	items ItemRepository,
	eligibility *CommentEligibility,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		comments:    comments,
		users:       users,
		items:       items,
		eligibility: eligibility,
		clock:       clk,
	}
}

func (c *commentCommandsImpl) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	author, err := c.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if _, err := c.eligibility.CheckEligible(ctx, itemID, authorID, now); err != nil {
		return nil, err
	}

	commentEntity, err := comment.NewComment(text, itemID, authorID, now)
	if err != nil {
		return nil, err
	}

	if err := c.comments.Create(ctx, commentEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:         commentEntity.ID(),
		Text:       commentEntity.Text(),
		AuthorName: author.Name(),
		CreatedAt:  commentEntity.CreatedAt(),
	}, nil
}
