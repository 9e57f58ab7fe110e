package readstore

import (
	"context"
	"time"

	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemViewSQL = `
SELECT id, name, description, available, owner_id, request_id
FROM items
`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row := r.db.QueryRow(ctx, itemViewSQL+"WHERE id = $1", id)
	view, err := scanItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return view, nil
}

func (r *ItemReadStore) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, itemViewSQL+"WHERE owner_id = $1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return collectItemViews(rows)
}

const searchItemsSQL = itemViewSQL + `
WHERE available
  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY created_at
`

// Search matches available items whose name or description contains the
// text, case-insensitively. Blank text is handled upstream.
func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, searchItemsSQL, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return collectItemViews(rows)
}

const lastForItemSQL = `
SELECT id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = $1 AND status = 'APPROVED' AND start_date <= $2
ORDER BY start_date DESC
LIMIT 1
`

func (r *ItemReadStore) LastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	return r.refForItem(ctx, lastForItemSQL, itemID, now)
}

const nextForItemSQL = `
SELECT id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = $1 AND status = 'APPROVED' AND start_date > $2
ORDER BY start_date ASC
LIMIT 1
`

func (r *ItemReadStore) NextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	return r.refForItem(ctx, nextForItemSQL, itemID, now)
}

func (r *ItemReadStore) refForItem(ctx context.Context, sql string, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	var ref queries.BookingRef
	err := r.db.QueryRow(ctx, sql, itemID, now).Scan(&ref.ID, &ref.BookerID, &ref.Start, &ref.End)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find adjacent booking", err)
	}
	return &ref, nil
}

const lastForItemsSQL = `
SELECT item_id, id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = ANY($1) AND status = 'APPROVED' AND start_date <= $2
ORDER BY start_date DESC
`

// LastForItems returns the past-or-current APPROVED bookings of all items,
// most recent first, so callers keep the first row seen per item.
func (r *ItemReadStore) LastForItems(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*queries.ItemBookingRow, error) {
	return r.refsForItems(ctx, lastForItemsSQL, itemIDs, now)
}

const nextForItemsSQL = `
SELECT item_id, id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = ANY($1) AND status = 'APPROVED' AND start_date > $2
ORDER BY start_date ASC
`

// NextForItems is the forward-looking counterpart, soonest first.
func (r *ItemReadStore) NextForItems(ctx context.Context, itemIDs []uuid.UUID, now time.Time) ([]*queries.ItemBookingRow, error) {
	return r.refsForItems(ctx, nextForItemsSQL, itemIDs, now)
}

func (r *ItemReadStore) refsForItems(ctx context.Context, sql string, itemIDs []uuid.UUID, now time.Time) ([]*queries.ItemBookingRow, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, sql, itemIDs, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find adjacent bookings", err)
	}
	defer rows.Close()

	var result []*queries.ItemBookingRow
	for rows.Next() {
		var row queries.ItemBookingRow
		if scanErr := rows.Scan(&row.ItemID, &row.Booking.ID, &row.Booking.BookerID, &row.Booking.Start, &row.Booking.End); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find adjacent bookings", err)
	}
	return result, nil
}

func scanItemView(row rowScanner) (*queries.ItemView, error) {
	var view queries.ItemView
	var requestID pgtype.UUID
	err := row.Scan(&view.ID, &view.Name, &view.Description, &view.Available, &view.OwnerID, &requestID)
	if err != nil {
		return nil, err
	}
	view.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	return &view, nil
}

func collectItemViews(rows pgx.Rows) ([]*queries.ItemView, error) {
	defer rows.Close()

	var result []*queries.ItemView
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	return result, nil
}
