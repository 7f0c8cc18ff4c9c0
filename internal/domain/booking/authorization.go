package booking

import "github.com/google/uuid"

// Authorization rules for bookings, kept as free functions so read-side
// views (which never reconstruct the aggregate) apply exactly the same
// checks as the entity methods.

// CanView: only the booker and the item owner may read a booking.
func CanView(bookerID, itemOwnerID, requesterID uuid.UUID) bool {
	return requesterID == bookerID || requesterID == itemOwnerID
}

// CanDecide: only the item owner may approve or reject.
func CanDecide(itemOwnerID, requesterID uuid.UUID) bool {
	return requesterID == itemOwnerID
}
