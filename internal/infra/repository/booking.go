package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, item_id, booker_id, status, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.ItemID(), b.BookerID(), string(b.Status()),
		b.Period().Start(), b.Period().End(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const findBookingForUpdateSQL = `
SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.status, b.start_date, b.end_date
FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE b.id = $1
FOR UPDATE OF b
`

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	var status string
	err := dbtx.QueryRow(ctx, findBookingForUpdateSQL, id).Scan(
		&snap.ID, &snap.ItemID, &snap.ItemOwnerID, &snap.BookerID,
		&status, &snap.Start, &snap.End,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2 WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
