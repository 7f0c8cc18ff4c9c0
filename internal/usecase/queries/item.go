package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=item.go -destination=../../../tests/mock/queries/item.go -package=queries

type ItemQueries interface {
	Get(ctx context.Context, itemID, requesterID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	Search(ctx context.Context, text string) ([]*ItemView, error)
	Summarize(ctx context.Context, itemID uuid.UUID) (*ItemBookingSummary, error)
}

type ItemViewStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
	SearchAvailable(ctx context.Context, text string) ([]*ItemView, error)
}

// BookingSummaryStore derives the last/next approved booking per item.
// Absence of either is a valid nil result, not an error.
type BookingSummaryStore interface {
	FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingSummaryView, error)
	FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingSummaryView, error)
}

type CommentViewStore interface {
	FindViewsByItem(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

type itemQueriesImpl struct {
	items     ItemViewStore
	summaries BookingSummaryStore
	comments  CommentViewStore
	clock     clock.Clock
}

func NewItemQueries(items ItemViewStore, summaries BookingSummaryStore, comments CommentViewStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:     items,
		summaries: summaries,
		comments:  comments,
		clock:     clk,
	}
}

// Get returns the item detail view. The booking summary is shown to the
// owner only; comments are visible to everyone.
func (q *itemQueriesImpl) Get(ctx context.Context, itemID, requesterID uuid.UUID) (*ItemView, error) {
	view, err := q.items.FindViewByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.OwnerID == requesterID {
		if err := q.attachSummary(ctx, view); err != nil {
			return nil, err
		}
	}

	comments, err := q.comments.FindViewsByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.Comments = comments

	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	views, err := q.items.FindViewsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, view := range views {
		if err := q.attachSummary(ctx, view); err != nil {
			return nil, err
		}
		comments, err := q.comments.FindViewsByItem(ctx, view.ID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view.Comments = comments
	}
	return views, nil
}

// Search matches available items by name or description. A blank query
// returns an empty result instead of everything.
func (q *itemQueriesImpl) Search(ctx context.Context, text string) ([]*ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	views, err := q.items.SearchAvailable(ctx, text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *itemQueriesImpl) Summarize(ctx context.Context, itemID uuid.UUID) (*ItemBookingSummary, error) {
	now := q.clock.Now()

	last, err := q.summaries.FindLastForItem(ctx, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	next, err := q.summaries.FindNextForItem(ctx, itemID, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ItemBookingSummary{Last: last, Next: next}, nil
}

func (q *itemQueriesImpl) attachSummary(ctx context.Context, view *ItemView) error {
	summary, err := q.Summarize(ctx, view.ID)
	if err != nil {
		return err
	}
	view.LastBooking = summary.Last
	view.NextBooking = summary.Next
	return nil
}
