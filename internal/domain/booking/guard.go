package booking

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemSnapshot is the write-side view of the item being booked. The item
// aggregate itself belongs to another package; bookings only need identity,
// ownership and the availability flag captured at creation time.
type ItemSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

// CheckCreatable validates a booking request against the item state and the
// requester's identity. Pure: its result depends only on the arguments,
// including the injected reference time.
//
// The availability flag is checked at the moment of creation only and is not
// re-checked afterward.
func CheckCreatable(item ItemSnapshot, requesterID uuid.UUID, start, end, now time.Time) error {
	if !item.Available {
		return errs.ErrItemNotAvailable
	}
	if item.OwnerID == requesterID {
		return errs.ErrSelfBooking
	}
	if _, err := NewTimeWindow(start, end, now); err != nil {
		return err
	}
	return nil
}
