//go:build unit || integration

package builder

import (
	"time"

	domitem "shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   true,
		CreatedAt:   time.Now().Truncate(time.Second),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(b.Name, b.Description, b.Available, b.OwnerID, b.CreatedAt)
}

func (b *ItemBuilder) BuildReconstructed() *domitem.Item {
	return domitem.ReconstructItem(b.ID, b.Name, b.Description, b.Available, b.OwnerID, b.CreatedAt, b.CreatedAt)
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	var view queries.ItemView
	_ = copier.Copy(&view, b)
	return &view
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := b.Available
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		Description: b.Description,
		Available:   &available,
	}
}
