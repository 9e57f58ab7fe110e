package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name must not be empty")
	ErrEmptyDescription = errors.New("item description must not be empty")
)

// Item is a physical thing listed for rental. Ownership is exclusive:
// one owner, many items. requestID back-references the item request that
// prompted the listing, when there was one.
type Item struct {
	id          uuid.UUID
	name        string
	description string
	available   bool
	ownerID     uuid.UUID
	requestID   *uuid.UUID
	createdAt   time.Time
}

func NewItem(name, description string, available bool, ownerID uuid.UUID, requestID *uuid.UUID) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Item{
		id:          uuid.New(),
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	name, description string,
	available bool,
	ownerID uuid.UUID,
	requestID *uuid.UUID,
	createdAt time.Time,
) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
		createdAt:   createdAt,
	}
}

// Patch applies a partial update; nil fields keep their value.
func (i *Item) Patch(name, description *string, available *bool) error {
	if name != nil {
		v := strings.TrimSpace(*name)
		if v == "" {
			return ErrEmptyName
		}
		i.name = v
	}
	if description != nil {
		v := strings.TrimSpace(*description)
		if v == "" {
			return ErrEmptyDescription
		}
		i.description = v
	}
	if available != nil {
		i.available = *available
	}
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
