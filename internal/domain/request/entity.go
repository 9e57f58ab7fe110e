package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyDescription = errors.New("request description must not be empty")

// ItemRequest is a wish for an item that is not listed yet. Items created
// in answer carry a back-reference to the request.
type ItemRequest struct {
	id          uuid.UUID
	description string
	requestorID uuid.UUID
	created     time.Time
}

func NewItemRequest(description string, requestorID uuid.UUID, now time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &ItemRequest{
		id:          uuid.New(),
		description: description,
		requestorID: requestorID,
		created:     now,
	}, nil
}

func ReconstructItemRequest(id uuid.UUID, description string, requestorID uuid.UUID, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		description: description,
		requestorID: requestorID,
		created:     created,
	}
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }
func (r *ItemRequest) Created() time.Time     { return r.created }
