package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID        uuid.UUID       `json:"id"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	Status    string          `json:"status"`
	Booker    UserRefResponse `json:"booker"`
	Item      ItemRefResponse `json:"item"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BookingSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        view.ID,
		Start:     view.Start,
		End:       view.End,
		Status:    view.Status,
		Booker:    UserRefResponse{ID: view.Booker.ID, Name: view.Booker.Name},
		Item:      ItemRefResponse{ID: view.Item.ID, Name: view.Item.Name},
		CreatedAt: view.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, len(views))
	for i, view := range views {
		responses[i] = FromBookingView(view)
	}
	return responses
}

func FromBookingSummaryView(view *queries.BookingSummaryView) *BookingSummaryResponse {
	if view == nil {
		return nil
	}
	return &BookingSummaryResponse{
		ID:       view.ID,
		BookerID: view.BookerID,
		Start:    view.Start,
		End:      view.End,
	}
}
