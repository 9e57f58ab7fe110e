package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrOwnerBooking    = errors.New("owner cannot book own item")
	ErrAlreadyDecided  = errors.New("booking status is already decided")
)

// ItemSpec is the slice of item state a booking needs at creation time.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
}

// NewBooking creates a WAITING booking. The item must be available and the
// booker must not be its owner. Overlap with other bookings on the same
// item is not checked.
func NewBooking(item ItemSpec, bookerID uuid.UUID, period Period) (*Booking, error) {
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrOwnerBooking
	}
	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
	}
}

// Decide performs the one-shot WAITING -> APPROVED/REJECTED transition.
// Re-invocation on a decided booking always fails, regardless of which
// decision came first.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// Classify places the booking in its temporal bucket relative to now.
// Exactly one of CURRENT/PAST/FUTURE holds for any instant.
func (b *Booking) Classify(now time.Time) State {
	switch {
	case b.period.IsPast(now):
		return StatePast
	case b.period.IsFuture(now):
		return StateFuture
	default:
		return StateCurrent
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
