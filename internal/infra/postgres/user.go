package postgres

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("users").
		Columns("id", "name", "email", "created_at", "updated_at").
		Values(u.ID(), u.Name(), u.Email().Value(), u.CreatedAt(), u.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build create user query", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "email", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build find user query", err)
	}

	var (
		userID               uuid.UUID
		name, email          string
		createdAt, updatedAt time.Time
	)
	row := s.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&userID, &name, &email, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	return user.ReconstructUser(userID, name, emailVO, createdAt, updatedAt), nil
}

func (s *UserStore) Update(ctx context.Context, u *user.User) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("users").
		Set("name", u.Name()).
		Set("email", u.Email().Value()).
		Set("updated_at", u.UpdatedAt()).
		Where(squirrel.Eq{"id": u.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update user query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete user query", err)
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (s *UserStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("1").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build user exists query", err)
	}

	var one int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return true, nil
}

func (s *UserStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user view query", err)
	}

	var view queries.UserView
	row := s.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&view.ID, &view.Name, &view.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user view by ID", err)
	}
	return &view, nil
}

func (s *UserStore) FindAllViews(ctx context.Context) ([]*queries.UserView, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "email").
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build list users query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}
