package commands

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=item.go -destination=../../../tests/mock/commands/item.go -package=commands

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
}

// PatchItemParams carries a partial update; nil fields are left untouched.
type PatchItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*queries.ItemView, error)
	Patch(ctx context.Context, itemID, requesterID uuid.UUID, params PatchItemParams) (*queries.ItemView, error)
}

type itemCommandsImpl struct {
	items ItemRepository
	users UserRepository
	clock clock.Clock
}

func NewItemCommands(items ItemRepository, users UserRepository, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{
		items: items,
		users: users,
		clock: clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*queries.ItemView, error) {
	if _, err := c.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemEntity, err := item.NewItem(params.Name, params.Description, params.Available, ownerID, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.items.Create(ctx, itemEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toItemView(itemEntity), nil
}

func (c *itemCommandsImpl) Patch(ctx context.Context, itemID, requesterID uuid.UUID, params PatchItemParams) (*queries.ItemView, error) {
	itemEntity, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !itemEntity.IsOwnedBy(requesterID) {
		return nil, errs.ErrNotOwner
	}

	if err := itemEntity.Patch(params.Name, params.Description, params.Available, c.clock.Now()); err != nil {
		return nil, err
	}

	if err := c.items.Update(ctx, itemEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toItemView(itemEntity), nil
}

func toItemView(i *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		OwnerID:     i.OwnerID(),
	}
}
