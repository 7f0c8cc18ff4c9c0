package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		Created:    view.CreatedAt,
	}
}
