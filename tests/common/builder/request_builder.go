//go:build unit || e2e

package builder

import (
	"time"

	domrequest "gearshare/internal/domain/request"
	reqdto "gearshare/internal/handler/dto/request"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID          uuid.UUID
	Description string
	RequestorID uuid.UUID
	CreatedAt   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          uuid.New(),
		Description: "Looking for a cordless drill for a weekend project",
		RequestorID: uuid.New(),
		CreatedAt:   time.Now(),
	}
}

func (r *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RequestBuilder) BuildDomain() *domrequest.ItemRequest {
	return domrequest.ReconstructItemRequest(r.ID, r.Description, r.RequestorID, r.CreatedAt)
}

func (r *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequestRequest {
	return reqdto.CreateItemRequestRequest{
		Description: r.Description,
	}
}

func (r *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     r.CreatedAt,
		Items:       []*queries.ItemView{},
	}
}

func (r *RequestBuilder) BuildSnapshot() *shared.RequestSnapshot {
	return &shared.RequestSnapshot{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		Created:     r.CreatedAt,
	}
}
