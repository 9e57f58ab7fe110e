package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO item_requests (id, description, requestor_id, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createRequestSQL,
		req.ID(), req.Description(), req.RequestorID(), req.Created(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
