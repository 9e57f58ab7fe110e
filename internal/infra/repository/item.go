package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

const createItemSQL = `
INSERT INTO items (id, name, description, available, owner_id, request_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *ItemRepository) Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createItemSQL,
		it.ID(), it.Name(), it.Description(), it.Available(), it.OwnerID(),
		pgconv.UUIDPtrToPgtype(it.RequestID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

const updateItemSQL = `
UPDATE items
SET name = $2, description = $3, available = $4
WHERE id = $1
`

func (r *ItemRepository) Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error {
	tag, err := dbtx.Exec(ctx, updateItemSQL,
		it.ID(), it.Name(), it.Description(), it.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
