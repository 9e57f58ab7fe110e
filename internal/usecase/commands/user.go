package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (uuid.UUID, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, input CreateUserInput) (uuid.UUID, error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	entity := user.NewUser(name, email)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Users().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (uuid.UUID, error) {
	var namePatch *user.Name
	if input.Name != nil {
		name, err := user.NewName(*input.Name)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDomainValidation)
		}
		namePatch = &name
	}
	var emailPatch *user.Email
	if input.Email != nil {
		email, err := user.NewEmail(*input.Email)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDomainValidation)
		}
		emailPatch = &email
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().UserByID(ctx, userID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		name, txErr := user.NewName(snap.Name)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}
		email, txErr := user.NewEmail(snap.Email)
		if txErr != nil {
			return errs.Mark(txErr, ErrDomainValidation)
		}
		entity := user.ReconstructUser(snap.ID, name, email, snap.Created)
		entity.Patch(namePatch, emailPatch)

		return tx.Users().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}
	return userID, nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		txErr := tx.Users().Delete(ctx, tx.DB(), userID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
