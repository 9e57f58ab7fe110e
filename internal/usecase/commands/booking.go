package commands

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type NewBookingInput struct {
	ItemID uuid.UUID
	Start  *time.Time
	End    *time.Time
}

type BookingCommands interface {
	// Create validates the request against the item and requester and
	// persists a WAITING booking. Overlapping bookings on the same item are
	// not rejected.
	Create(ctx context.Context, input NewBookingInput, requesterID uuid.UUID) (*queries.BookingView, error)
	// Decide is the one-shot WAITING -> APPROVED/REJECTED transition,
	// permitted to the item owner only.
	Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, bookingQueries: bookingQueries}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, input NewBookingInput, requesterID uuid.UUID) (*queries.BookingView, error) {
	if input.Start == nil || input.End == nil {
		return nil, ErrMissingPeriod
	}
	period, err := booking.NewPeriod(*input.Start, *input.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	reads := uc.uow.Reads()
	if _, err = reads.UserByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	itemSnap, err := reads.ItemByID(ctx, input.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(booking.ItemSpec{
		ID:        itemSnap.ID,
		OwnerID:   itemSnap.OwnerID,
		Available: itemSnap.Available,
	}, requesterID, period)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrItemUnavailable):
			return nil, errs.Mark(err, ErrItemUnavailable)
		case errors.Is(err, booking.ErrOwnerBooking):
			return nil, errs.Mark(err, ErrOwnerBooking)
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	var bookingID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: the requester is the booker, so access is granted.
	return uc.bookingQueries.GetByID(ctx, requesterID, bookingID)
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if snap.ItemOwnerID != ownerID {
			return ErrNotItemOwner
		}

		period, txErr := booking.NewPeriod(snap.Start, snap.End)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}
		entity := booking.ReconstructBooking(snap.ID, snap.ItemID, snap.BookerID, period, snap.Status, time.Time{})
		if txErr = entity.Decide(approve); txErr != nil {
			return errs.Mark(txErr, ErrAlreadyDecided)
		}

		if txErr = tx.Bookings().UpdateStatus(ctx, tx.DB(), snap.ID, entity.Status()); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, ownerID, bookingID)
}
