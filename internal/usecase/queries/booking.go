package queries

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")
	ErrUnknownState    = errs.New("unknown state")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByID is visible to the booker and the item owner only; anyone else
	// gets not-found so the booking's existence never leaks.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, stateToken string) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, stateToken string) ([]*BookingView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != actorID && view.Item.OwnerID != actorID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, stateToken string) ([]*BookingView, error) {
	state, err := booking.ParseState(stateToken)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownState)
	}
	return q.bookings.ListByBooker(ctx, bookerID, state, q.clock.Now())
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, stateToken string) ([]*BookingView, error) {
	state, err := booking.ParseState(stateToken)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownState)
	}
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return q.bookings.ListByOwner(ctx, ownerID, state, q.clock.Now())
}
