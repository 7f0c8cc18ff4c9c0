package comment

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type Comment struct {
	id        uuid.UUID
	text      string
	itemID    uuid.UUID
	authorID  uuid.UUID
	createdAt time.Time
}

func NewComment(text string, itemID, authorID uuid.UUID, now time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyComment
	}

	return &Comment{
		id:        uuid.New(),
		text:      text,
		itemID:    itemID,
		authorID:  authorID,
		createdAt: now,
	}, nil
}

func ReconstructComment(id uuid.UUID, text string, itemID, authorID uuid.UUID, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		text:      text,
		itemID:    itemID,
		authorID:  authorID,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) ItemID() uuid.UUID    { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID  { return c.authorID }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
