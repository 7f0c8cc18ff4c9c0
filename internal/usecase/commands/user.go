package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commands

type CreateUserParams struct {
	Name  string
	Email string
}

// PatchUserParams carries a partial update; nil fields are left untouched.
type PatchUserParams struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
	Patch(ctx context.Context, userID uuid.UUID, params PatchUserParams) (*queries.UserView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	users UserRepository
	clock clock.Clock
}

func NewUserCommands(users UserRepository, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		users: users,
		clock: clk,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}

	userEntity, err := user.NewUser(params.Name, email, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.users.Create(ctx, userEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toUserView(userEntity), nil
}

func (c *userCommandsImpl) Patch(ctx context.Context, userID uuid.UUID, params PatchUserParams) (*queries.UserView, error) {
	userEntity, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if params.Name != nil {
		if err := userEntity.Rename(*params.Name, now); err != nil {
			return nil, err
		}
	}
	if params.Email != nil {
		email, err := user.NewEmail(*params.Email)
		if err != nil {
			return nil, err
		}
		userEntity.ChangeEmail(email, now)
	}

	if err := c.users.Update(ctx, userEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateEmail
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toUserView(userEntity), nil
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.users.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func toUserView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:    u.ID(),
		Name:  u.Name(),
		Email: u.Email().Value(),
	}
}
