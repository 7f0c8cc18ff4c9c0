package postgres

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentStore struct {
	pool *pgxpool.Pool
}

func NewCommentStore(pool *pgxpool.Pool) *CommentStore {
	return &CommentStore{pool: pool}
}

func (s *CommentStore) Create(ctx context.Context, c *comment.Comment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("comments").
		Columns("id", "text", "item_id", "author_id", "created_at").
		Values(c.ID(), c.Text(), c.ItemID(), c.AuthorID(), c.CreatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create comment query", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}

func (s *CommentStore) FindViewsByItem(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("c.id", "c.text", "u.name", "c.created_at").
		From("comments c").
		Join("users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comments by item query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}
