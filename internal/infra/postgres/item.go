package postgres

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemStore struct {
	pool *pgxpool.Pool
}

func NewItemStore(pool *pgxpool.Pool) *ItemStore {
	return &ItemStore{pool: pool}
}

func (s *ItemStore) Create(ctx context.Context, i *item.Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("items").
		Columns("id", "name", "description", "available", "owner_id", "created_at", "updated_at").
		Values(i.ID(), i.Name(), i.Description(), i.Available(), i.OwnerID(), i.CreatedAt(), i.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create item query", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

func (s *ItemStore) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "available", "owner_id", "created_at", "updated_at").
		From("items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build find item query", err)
	}

	var (
		itemID, ownerID      uuid.UUID
		name, description    string
		available            bool
		createdAt, updatedAt time.Time
	)
	row := s.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&itemID, &name, &description, &available, &ownerID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return item.ReconstructItem(itemID, name, description, available, ownerID, createdAt, updatedAt), nil
}

func (s *ItemStore) Update(ctx context.Context, i *item.Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("items").
		Set("name", i.Name()).
		Set("description", i.Description()).
		Set("available", i.Available()).
		Set("updated_at", i.UpdatedAt()).
		Where(squirrel.Eq{"id": i.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update item query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (s *ItemStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query, args, err := itemViewSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item view query", err)
	}

	view, err := scanItemView(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view by ID", err)
	}
	return view, nil
}

func (s *ItemStore) FindViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	query, args, err := itemViewSelect().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build items by owner query", err)
	}
	return s.queryViews(ctx, query, args)
}

// SearchAvailable matches available items whose name or description contains
// the text, case-insensitively.
func (s *ItemStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	query, args, err := itemViewSelect().
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item search query", err)
	}
	return s.queryViews(ctx, query, args)
}

func (s *ItemStore) queryViews(ctx context.Context, query string, args []any) ([]*queries.ItemView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return views, nil
}

func itemViewSelect() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("id", "name", "description", "available", "owner_id").
		From("items")
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var view queries.ItemView
	if err := row.Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID); err != nil {
		return nil, err
	}
	return &view, nil
}
