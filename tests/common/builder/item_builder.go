//go:build unit || e2e

package builder

import (
	"time"

	domitem "gearshare/internal/domain/item"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
		OwnerID:     uuid.New(),
		CreatedAt:   time.Now(),
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

// Build methods
func (i *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(i.Name, i.Description, i.Available, i.OwnerID, i.RequestID)
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
		RequestID:   i.RequestID,
	}
}

func (i *ItemBuilder) BuildUpdateRequestDTO() reqdto.UpdateItemRequest {
	name := i.Name
	description := i.Description
	available := i.Available
	return reqdto.UpdateItemRequest{
		Name:        &name,
		Description: &description,
		Available:   &available,
	}
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func (i *ItemBuilder) BuildDetailView() *queries.ItemDetailView {
	return &queries.ItemDetailView{
		ItemView: *i.BuildView(),
		Comments: []*queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		OwnerID:     i.OwnerID,
		Available:   i.Available,
		RequestID:   i.RequestID,
		Created:     i.CreatedAt,
	}
}
