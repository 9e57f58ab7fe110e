package comment

import (
	"errors"
	"strings"
	"time"

	"gearshare/internal/pkg/clock"

	"github.com/google/uuid"
)

const MaxTextLength = 2000

var (
	ErrEmptyText          = errors.New("comment text must not be empty")
	ErrTextTooLong        = errors.New("comment text too long")
	ErrBookingNotFinished = errors.New("author did not complete a booking of this item")
)

type EligibilityInput struct {
	AuthorID uuid.UUID
	ItemID   uuid.UUID
	Now      time.Time
}

// EligibilityChecker decides whether the author has a finished, approved
// booking of the item. Implemented by the command layer against the
// booking store.
type EligibilityChecker interface {
	CanComment(input EligibilityInput) error
}

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type Comment struct {
	id       uuid.UUID
	text     string
	authorID uuid.UUID
	itemID   uuid.UUID
	created  time.Time
}

// NewComment gates creation on a provably completed rental: the checker
// must find an APPROVED booking by the author on the item with end < now.
func NewComment(services *Services, authorID, itemID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return nil, ErrTextTooLong
	}

	now := services.Clock.Now()
	if err := services.EligibilityChecker.CanComment(EligibilityInput{
		AuthorID: authorID,
		ItemID:   itemID,
		Now:      now,
	}); err != nil {
		return nil, err
	}

	return &Comment{
		id:       uuid.New(),
		text:     text,
		authorID: authorID,
		itemID:   itemID,
		created:  now,
	}, nil
}

func ReconstructComment(id uuid.UUID, text string, authorID, itemID uuid.UUID, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		authorID: authorID,
		itemID:   itemID,
		created:  created,
	}
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) Created() time.Time  { return c.created }
