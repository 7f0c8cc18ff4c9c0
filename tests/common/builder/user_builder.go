//go:build unit || integration

package builder

import (
	"time"

	domuser "shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email, b.CreatedAt)
}

func (b *UserBuilder) BuildReconstructed() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.ReconstructUser(b.ID, b.Name, email, b.CreatedAt, b.CreatedAt), nil
}

func (b *UserBuilder) BuildView() *queries.UserView {
	var view queries.UserView
	_ = copier.Copy(&view, b)
	return &view
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{Name: b.Name, Email: b.Email}
}
