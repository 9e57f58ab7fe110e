package readstore

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/pkg/pgconv"
	"gearshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.start_date, b.end_date, b.status,
       i.id, i.name, i.owner_id,
       u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+"WHERE b.id = $1", id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// stateClause maps a listing bucket to its filter. WAITING and REJECTED cut
// on status, the time buckets compare against the reference instant, passed
// twice for CURRENT because the clause bounds both ends.
type stateClause struct {
	sql      string
	needsNow bool
}

var stateClauses = map[booking.State]stateClause{
	booking.StateAll:      {sql: ""},
	booking.StateCurrent:  {sql: " AND b.start_date <= $2 AND b.end_date >= $2", needsNow: true},
	booking.StatePast:     {sql: " AND b.end_date < $2", needsNow: true},
	booking.StateFuture:   {sql: " AND b.start_date > $2", needsNow: true},
	booking.StateWaiting:  {sql: " AND b.status = 'WAITING'"},
	booking.StateRejected: {sql: " AND b.status = 'REJECTED'"},
}

func (r *BookingReadStore) ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*queries.BookingView, error) {
	return r.list(ctx, "WHERE b.booker_id = $1", bookerID, state, now)
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*queries.BookingView, error) {
	return r.list(ctx, "WHERE i.owner_id = $1", ownerID, state, now)
}

func (r *BookingReadStore) list(ctx context.Context, where string, userID uuid.UUID, state booking.State, now time.Time) ([]*queries.BookingView, error) {
	clause := stateClauses[state]
	sql := bookingViewSQL + where + clause.sql + " ORDER BY b.start_date DESC"
	args := []any{userID}
	if clause.needsNow {
		args = append(args, now)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.Start, &view.End, &view.Status,
		&view.Item.ID, &view.Item.Name, &view.Item.OwnerID,
		&view.Booker.ID, &view.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
