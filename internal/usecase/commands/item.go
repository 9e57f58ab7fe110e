package commands

import (
	"context"
	"errors"

	domcomment "gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/queries"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, input CreateItemInput, ownerID uuid.UUID) (uuid.UUID, error)
	// Update is owner-only; anyone else gets not-found so item ownership
	// never leaks.
	Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput, actorID uuid.UUID) (uuid.UUID, error)
	// CreateComment gates on a completed rental: the author must hold an
	// APPROVED booking of the item that ended strictly before now.
	CreateComment(ctx context.Context, text string, authorID, itemID uuid.UUID) (*queries.CommentView, error)
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, input CreateItemInput, ownerID uuid.UUID) (uuid.UUID, error) {
	if _, err := uc.uow.Reads().UserByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := item.NewItem(input.Name, input.Description, input.Available, ownerID, input.RequestID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var itemID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Items().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		itemID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrRequestNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return itemID, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, itemID uuid.UUID, input UpdateItemInput, actorID uuid.UUID) (uuid.UUID, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().ItemByID(ctx, itemID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if snap.OwnerID != actorID {
			return ErrItemNotFound
		}

		entity := item.ReconstructItem(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID, snap.RequestID, snap.Created)
		if txErr = entity.Patch(input.Name, input.Description, input.Available); txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}
		if txErr = tx.Items().Update(ctx, tx.DB(), entity); txErr != nil {
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (uc *itemUseCaseImpl) CreateComment(ctx context.Context, text string, authorID, itemID uuid.UUID) (*queries.CommentView, error) {
	reads := uc.uow.Reads()
	author, err := reads.UserByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if _, err = reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	services := &domcomment.Services{
		Clock:              uc.clock,
		EligibilityChecker: &bookingEligibility{ctx: ctx, reads: reads},
	}
	entity, err := domcomment.NewComment(services, authorID, itemID, text)
	if err != nil {
		if errors.Is(err, domcomment.ErrBookingNotFinished) {
			return nil, errs.Mark(err, ErrBookingNotFinished)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Comments().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Author display name denormalized onto the result.
	return &queries.CommentView{
		ID:         entity.ID(),
		Text:       entity.Text(),
		AuthorName: author.Name,
		Created:    entity.Created(),
	}, nil
}

type bookingEligibility struct {
	ctx   context.Context
	reads shared.CommandReads
}

func (e *bookingEligibility) CanComment(input domcomment.EligibilityInput) error {
	ok, err := e.reads.HasFinishedBooking(e.ctx, input.AuthorID, input.ItemID, input.Now)
	if err != nil {
		return err
	}
	if !ok {
		return domcomment.ErrBookingNotFinished
	}
	return nil
}
