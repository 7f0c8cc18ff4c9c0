package commands

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commands

// BookingCommands is the write side of the booking lifecycle:
// create (-> WAITING) and decide (WAITING -> APPROVED/REJECTED, once).
type BookingCommands interface {
	Create(ctx context.Context, bookerID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error)
	Decide(ctx context.Context, bookingID, requesterID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings     BookingRepository
	users        UserRepository
	items        ItemRepository
	bookingViews queries.BookingViewStore
	clock        clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	users UserRepository,
	items ItemRepository,
	bookingViews queries.BookingViewStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:     bookings,
		users:        users,
		items:        items,
		bookingViews: bookingViews,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, bookerID, itemID uuid.UUID, start, end time.Time) (*queries.BookingView, error) {
	if _, err := c.users.FindByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemEntity, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	snapshot := booking.ItemSnapshot{
		ID:        itemEntity.ID(),
		OwnerID:   itemEntity.OwnerID(),
		Available: itemEntity.Available(),
	}

	// No overlap check here: two overlapping windows for the same item can
	// both be created. Known gap, kept deliberately.
	bookingEntity, err := booking.NewBooking(snapshot, bookerID, start, end, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.bookings.Create(ctx, bookingEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, bookingEntity.ID())
}

func (c *bookingCommandsImpl) Decide(ctx context.Context, bookingID, requesterID uuid.UUID, approve bool) (*queries.BookingView, error) {
	bookingEntity, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := bookingEntity.Decide(requesterID, approve); err != nil {
		return nil, err
	}

	// The entity check above is advisory; the store's conditional update is
	// what makes concurrent decides on the same booking safe.
	if err := c.bookings.UpdateStatusIfWaiting(ctx, bookingID, bookingEntity.Status()); err != nil {
		if errors.Is(err, errs.ErrAlreadyDecided) {
			return nil, errs.ErrAlreadyDecided
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, bookingID)
}

// Read-after-write: return the joined view from the read store.
func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookingViews.FindViewByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
