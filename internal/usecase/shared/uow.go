package shared

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: command-side reads outside a transaction
	Reads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// Write-side snapshots keep the command layer off the read-side view types.
type UserSnapshot struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Created time.Time
}

type ItemSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	Available   bool
	RequestID   *uuid.UUID
	Created     time.Time
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Status      booking.Status
	Start       time.Time
	End         time.Time
}

type RequestSnapshot struct {
	ID          uuid.UUID
	Description string
	RequestorID uuid.UUID
	Created     time.Time
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	// HasFinishedBooking reports whether the booker has an APPROVED booking
	// of the item that ended strictly before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate locks the booking row so concurrent decisions on the
	// same booking serialize; exactly one caller sees WAITING.
	FindByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, db db.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, u *user.User) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, db db.DBTX, c *comment.Comment) (uuid.UUID, error)
}

type RequestRepository interface {
	Create(ctx context.Context, db db.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}
