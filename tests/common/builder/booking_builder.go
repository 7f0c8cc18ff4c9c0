//go:build unit || integration

package builder

import (
	"time"

	dombooking "shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	ItemName    string
	BookerName  string
	Start       time.Time
	End         time.Time
	Status      string
	Available   bool
	CreatedAt   time.Time
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().Truncate(time.Second)
	return &BookingBuilder{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemOwnerID: uuid.New(),
		BookerID:    uuid.New(),
		ItemName:    "Cordless drill",
		BookerName:  "Alice",
		Start:       now.Add(24 * time.Hour),
		End:         now.Add(48 * time.Hour),
		Status:      "WAITING",
		Available:   true,
		CreatedAt:   now,
		Now:         now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) ItemSnapshot() dombooking.ItemSnapshot {
	return dombooking.ItemSnapshot{ID: b.ItemID, OwnerID: b.ItemOwnerID, Available: b.Available}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ItemSnapshot(), b.BookerID, b.Start, b.End, b.Now)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.ItemID, b.ItemOwnerID, b.BookerID,
		b.Start, b.End, dombooking.Status(b.Status), b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	var view queries.BookingView
	// ID, Start, End, Status, CreatedAt and ItemOwnerID share names
	_ = copier.Copy(&view, b)
	view.Booker = queries.UserRef{ID: b.BookerID, Name: b.BookerName}
	view.Item = queries.ItemRef{ID: b.ItemID, Name: b.ItemName}
	return &view
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{ItemID: b.ItemID, Start: b.Start, End: b.End}
}
