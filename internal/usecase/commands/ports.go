package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side store ports. The persistent store owns every record; the
// usecases borrow an aggregate for one operation and hand back an updated
// copy. Implementations wrap failures as infra.RepositoryError so callers
// can branch on the kind.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)

	// UpdateStatusIfWaiting is the atomic conditional transition backing
	// decide: it sets the status only while the stored status is still
	// WAITING. When the row exists but has already left WAITING (a
	// concurrent decide won), it returns errs.ErrAlreadyDecided.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error

	// FindLatestEndedApproved returns the APPROVED booking for (item, booker)
	// whose window ended before now, preferring the greatest end, or a
	// NOT_FOUND repository error. Filtering on end happens in the query, so a
	// later still-running or future booking never shadows an ended one.
	FindLatestEndedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (*booking.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) error
}
