package commands

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestInput struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, requestorID uuid.UUID, input CreateRequestInput) (uuid.UUID, error)
}

type requestUseCaseImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clk: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, requestorID uuid.UUID, input CreateRequestInput) (uuid.UUID, error) {
	entity, err := request.NewItemRequest(input.Description, requestorID, uc.clk.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := tx.Reads().UserByID(ctx, requestorID); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		_, txErr := tx.Requests().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}
