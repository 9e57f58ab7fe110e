package readstore

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewSQL = `
SELECT id, description, requestor_id, created_at
FROM item_requests
`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var view queries.RequestView
	err := r.db.QueryRow(ctx, requestViewSQL+"WHERE id = $1", id).
		Scan(&view.ID, &view.Description, &view.RequestorID, &view.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return &view, nil
}

func (r *RequestReadStore) FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, requestViewSQL+"WHERE requestor_id = $1 ORDER BY created_at DESC", requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return collectRequestViews(rows)
}

func (r *RequestReadStore) FindByOtherRequestors(ctx context.Context, requestorID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, requestViewSQL+"WHERE requestor_id <> $1 ORDER BY created_at DESC", requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return collectRequestViews(rows)
}

const itemsForRequestsSQL = `
SELECT id, name, description, available, owner_id, request_id
FROM items
WHERE request_id = ANY($1)
ORDER BY created_at
`

func (r *RequestReadStore) ItemsForRequests(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.ItemView, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, itemsForRequestsSQL, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items for requests", err)
	}
	return collectItemViews(rows)
}

func collectRequestViews(rows pgx.Rows) ([]*queries.RequestView, error) {
	defer rows.Close()

	var result []*queries.RequestView
	for rows.Next() {
		var view queries.RequestView
		if scanErr := rows.Scan(&view.ID, &view.Description, &view.RequestorID, &view.Created); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", scanErr)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	return result, nil
}
