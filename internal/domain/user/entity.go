package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that may own items and book other users' items.
// Email is unique across the system (enforced by the store).
type User struct {
	id        uuid.UUID
	name      Name
	email     Email
	createdAt time.Time
}

func NewUser(name Name, email Email) *User {
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
	}
}

// Patch applies a partial profile update; nil fields keep their value.
func (u *User) Patch(name *Name, email *Email) {
	if name != nil {
		u.name = *name
	}
	if email != nil {
		u.email = *email
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
