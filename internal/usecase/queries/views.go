package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Booker    UserRef   `json:"booker"`
	Item      ItemRef   `json:"item"`
	CreatedAt time.Time `json:"created_at"`

	// ItemOwnerID is carried for authorization only and never serialized.
	ItemOwnerID uuid.UUID `json:"-"`
}

// BookingSummaryView is the trimmed shape used on item detail/listing views
// for the last and next approved bookings.
type BookingSummaryView struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type ItemBookingSummary struct {
	Last *BookingSummaryView `json:"last,omitempty"`
	Next *BookingSummaryView `json:"next,omitempty"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type ItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     uuid.UUID `json:"owner_id"`

	// Filled only on detail/owner-listing views.
	LastBooking *BookingSummaryView `json:"last_booking,omitempty"`
	NextBooking *BookingSummaryView `json:"next_booking,omitempty"`
	Comments    []CommentView       `json:"comments,omitempty"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
