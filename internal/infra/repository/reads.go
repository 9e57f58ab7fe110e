package repository

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's existence and authorization checks.
// View assembly lives in the readstore package.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const userByIDSQL = `
SELECT id, name, email, created_at FROM users WHERE id = $1
`

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, userByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.Created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

const itemByIDSQL = `
SELECT id, name, description, available, owner_id, request_id, created_at
FROM items
WHERE id = $1
`

func (r *CommandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	var snap shared.ItemSnapshot
	var requestID pgtype.UUID
	err := r.db.QueryRow(ctx, itemByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Description, &snap.Available,
		&snap.OwnerID, &requestID, &snap.Created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	snap.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	return &snap, nil
}

const bookingByIDSQL = `
SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.status, b.start_date, b.end_date
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1
`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	var status string
	err := r.db.QueryRow(ctx, bookingByIDSQL, id).Scan(
		&snap.ID, &snap.ItemID, &snap.ItemOwnerID, &snap.BookerID,
		&status, &snap.Start, &snap.End,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

const requestByIDSQL = `
SELECT id, description, requestor_id, created_at FROM item_requests WHERE id = $1
`

func (r *CommandReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	var snap shared.RequestSnapshot
	err := r.db.QueryRow(ctx, requestByIDSQL, id).Scan(
		&snap.ID, &snap.Description, &snap.RequestorID, &snap.Created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item request by ID", err)
	}
	return &snap, nil
}

const hasFinishedBookingSQL = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE booker_id = $1
      AND item_id = $2
      AND status = 'APPROVED'
      AND end_date < $3
)
`

func (r *CommandReads) HasFinishedBooking(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, hasFinishedBookingSQL, bookerID, itemID, now).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}
