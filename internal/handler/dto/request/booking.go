package request

import (
	"time"

	"github.com/google/uuid"
)

// Start and End stay pointers so a missing bound is told apart from a
// zero time; the usecase layer rejects incomplete periods.
type CreateBookingRequest struct {
	ItemID uuid.UUID  `json:"item_id" binding:"required"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
}
