package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queries

type UserQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserViewStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAllViews(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	users UserViewStore
}

func NewUserQueries(users UserViewStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.users.FindViewByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	views, err := q.users.FindAllViews(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
