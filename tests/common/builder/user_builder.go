//go:build unit || e2e

package builder

import (
	"time"

	domuser "gearshare/internal/domain/user"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
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
		Name:      "Test User",
		Email:     "user@example.com",
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	name, err := domuser.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return domuser.ReconstructUser(u.ID, name, email, u.CreatedAt), nil
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildUpdateRequestDTO() reqdto.UpdateUserRequest {
	name := u.Name
	email := u.Email
	return reqdto.UpdateUserRequest{
		Name:  &name,
		Email: &email,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Created: u.CreatedAt,
	}
}
