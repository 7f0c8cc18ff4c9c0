package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName        = errors.New("item name cannot be empty")
	ErrEmptyItemDescription = errors.New("item description cannot be empty")
)

type Item struct {
	id          uuid.UUID
	name        string
	description string
	available   bool
	ownerID     uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name, description string, available bool, ownerID uuid.UUID, now time.Time) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyItemName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyItemDescription
	}

	return &Item{
		id:          uuid.New(),
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(id uuid.UUID, name, description string, available bool, ownerID uuid.UUID, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

// Patch applies a partial update. Nil fields keep their current value.
func (i *Item) Patch(name, description *string, available *bool, now time.Time) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrEmptyItemName
		}
		i.name = *name
	}
	if description != nil {
		if strings.TrimSpace(*description) == "" {
			return ErrEmptyItemDescription
		}
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = now
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Available() bool      { return i.available }
func (i *Item) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
