package response

import (
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Available   bool                    `json:"available"`
	OwnerID     uuid.UUID               `json:"ownerId"`
	LastBooking *BookingSummaryResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingSummaryResponse `json:"nextBooking,omitempty"`
	Comments    []*CommentResponse      `json:"comments,omitempty"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		OwnerID:     view.OwnerID,
		LastBooking: FromBookingSummaryView(view.LastBooking),
		NextBooking: FromBookingSummaryView(view.NextBooking),
	}
	if len(view.Comments) > 0 {
		resp.Comments = make([]*CommentResponse, len(view.Comments))
		for i := range view.Comments {
			resp.Comments[i] = FromCommentView(&view.Comments[i])
		}
	}
	return resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	responses := make([]*ItemResponse, len(views))
	for i, view := range views {
		responses[i] = FromItemView(view)
	}
	return responses
}
