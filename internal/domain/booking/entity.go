package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// Booking is the aggregate at the center of the lifecycle engine. The item
// owner is denormalized onto the booking so decision and view authorization
// do not need a second lookup; it is immutable after creation, as are the
// booker and item references.
type Booking struct {
	id          uuid.UUID
	itemID      uuid.UUID
	itemOwnerID uuid.UUID
	bookerID    uuid.UUID
	window      TimeWindow
	status      Status
	createdAt   time.Time
}

// NewBooking runs the availability guard and constructs a WAITING booking.
func NewBooking(item ItemSnapshot, bookerID uuid.UUID, start, end, now time.Time) (*Booking, error) {
	if err := CheckCreatable(item, bookerID, start, end, now); err != nil {
		return nil, err
	}

	window, err := NewTimeWindow(start, end, now)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		itemID:      item.ID,
		itemOwnerID: item.OwnerID,
		bookerID:    bookerID,
		window:      window,
		status:      StatusWaiting,
		createdAt:   now,
	}, nil
}

func ReconstructBooking(
	id, itemID, itemOwnerID, bookerID uuid.UUID,
	start, end time.Time,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		window:      ReconstructTimeWindow(start, end),
		status:      status,
		createdAt:   createdAt,
	}
}

// Decide applies the single allowed status transition:
// WAITING -> APPROVED or WAITING -> REJECTED, exactly once, by the item
// owner. The status check runs before the ownership check so a decided
// booking reports ErrAlreadyDecided regardless of who asks again.
func (b *Booking) Decide(requesterID uuid.UUID, approve bool) error {
	if b.status != StatusWaiting {
		return errs.ErrAlreadyDecided
	}
	if !CanDecide(b.itemOwnerID, requesterID) {
		return errs.ErrNotOwner
	}

	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// ViewableBy reports whether userID may read this booking: only the booker
// and the item owner qualify.
func (b *Booking) ViewableBy(userID uuid.UUID) bool {
	return CanView(b.bookerID, b.itemOwnerID, userID)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ItemID() uuid.UUID      { return b.itemID }
func (b *Booking) ItemOwnerID() uuid.UUID { return b.itemOwnerID }
func (b *Booking) BookerID() uuid.UUID    { return b.bookerID }
func (b *Booking) Window() TimeWindow     { return b.window }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
