package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queries

type BookingQueries interface {
	Get(ctx context.Context, bookingID, requesterID uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, requesterID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error)
	ListByOwnedItems(ctx context.Context, requesterID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error)
}

type BookingViewStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindFiltered(ctx context.Context, f booking.ListFilter) ([]*BookingView, error)
}

type UserExistenceStore interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingQueriesImpl struct {
	bookings BookingViewStore
	users    UserExistenceStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingViewStore, users UserExistenceStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, bookingID, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindViewByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !booking.CanView(view.Booker.ID, view.ItemOwnerID, requesterID) {
		return nil, errs.ErrNotAuthorized
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, requesterID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error) {
	return q.list(ctx, requesterID, booking.RoleBooker, bucket, offset, limit)
}

func (q *bookingQueriesImpl) ListByOwnedItems(ctx context.Context, requesterID uuid.UUID, bucket string, offset, limit int) ([]*BookingView, error) {
	return q.list(ctx, requesterID, booking.RoleOwner, bucket, offset, limit)
}

// list is the single query path shared by both roles, so the bucket
// semantics cannot drift between the booker and owner listings.
func (q *bookingQueriesImpl) list(ctx context.Context, requesterID uuid.UUID, role booking.Role, bucket string, offset, limit int) ([]*BookingView, error) {
	bk, err := booking.ParseBucket(bucket)
	if err != nil {
		return nil, err
	}

	exists, err := q.users.Exists(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	page, err := NewPage(offset, limit)
	if err != nil {
		return nil, err
	}

	views, err := q.bookings.FindFiltered(ctx, booking.ListFilter{
		UserID: requesterID,
		Role:   role,
		Bucket: bk,
		Now:    q.clock.Now(),
		Offset: page.Offset,
		Limit:  page.Limit,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
