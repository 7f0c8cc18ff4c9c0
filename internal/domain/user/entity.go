package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name string, email Email, now time.Time) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Rename and ChangeEmail implement the PATCH semantics: absent fields are
// simply never applied by the caller.
func (u *User) Rename(name string, now time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	u.name = name
	u.updatedAt = now
	return nil
}

func (u *User) ChangeEmail(email Email, now time.Time) {
	u.email = email
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
