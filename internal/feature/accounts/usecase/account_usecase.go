// Package usecase implements the business logic for account operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// AccountUsecase orchestrates account persistence. Every method runs inside
// exactly one unit of work and commits at most once. Name validation is left
// to the account repository, which owns that invariant.
type AccountUsecase struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewAccountUsecase creates a new AccountUsecase with the given factory.
func NewAccountUsecase(f repository.UnitOfWorkFactory) *AccountUsecase {
	return &AccountUsecase{uowFactory: f}
}

// AddAccount persists a new account under its broker and returns its
// representation carrying the generated id.
func (u *AccountUsecase) AddAccount(ctx context.Context, d dto.Account) (dto.Account, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Account{}, err
	}

	account := &entity.Account{ID: d.ID, Name: d.Name, BrokerID: d.BrokerID}
	if err := uow.Accounts().Add(ctx, account); err != nil {
		return dto.Account{}, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return dto.Account{}, err
	}
	slog.Info("added account", "id", account.ID, "broker_id", account.BrokerID)

	return toAccountDTO(account), nil
}

// GetAllAccounts returns every account.
func (u *AccountUsecase) GetAllAccounts(ctx context.Context) ([]dto.Account, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return nil, err
	}

	accounts, err := uow.Accounts().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Account, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountDTO(a)
	}
	return out, nil
}

// GetAccountByID returns the account with the given id, or
// repository.ErrNotFound.
func (u *AccountUsecase) GetAccountByID(ctx context.Context, id uuid.UUID) (dto.Account, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Account{}, err
	}

	account, err := uow.Accounts().Get(ctx, id)
	if err != nil {
		return dto.Account{}, err
	}
	return toAccountDTO(account), nil
}

// UpdateAccount merges the caller-supplied name onto the stored account.
// Balance and BrokerID are never taken from the payload; an absent account
// is reported as repository.ErrNotFound.
func (u *AccountUsecase) UpdateAccount(ctx context.Context, d dto.Account) error {
	// Validate the payload before the lookup so a bad name fails the same
	// way whether or not the account exists.
	if d.Name == "" {
		return repository.ErrAccountNameRequired
	}

	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	account, err := uow.Accounts().Get(ctx, d.ID)
	if err != nil {
		return err
	}

	account.Name = d.Name
	if err := uow.Accounts().Update(ctx, account); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("updated account", "id", account.ID, "name", account.Name)
	return nil
}

// DeleteAccount removes the account with the given id. Deleting an absent
// account is a logged no-op. Owned transactions are removed by the database
// cascade.
func (u *AccountUsecase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	account, err := uow.Accounts().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("no account to delete", "id", id)
			return nil
		}
		return err
	}

	if err := uow.Accounts().Delete(ctx, account); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("deleted account", "id", id)
	return nil
}

// GetAccountsByBrokerID returns all accounts owned by the given broker.
func (u *AccountUsecase) GetAccountsByBrokerID(ctx context.Context, brokerID uuid.UUID) ([]dto.Account, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return nil, err
	}

	accounts, err := uow.Accounts().GetByBrokerID(ctx, brokerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Account, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountDTO(a)
	}
	return out, nil
}

// GetBrokerBalance returns the sum of account balances for the given broker.
func (u *AccountUsecase) GetBrokerBalance(ctx context.Context, brokerID uuid.UUID) (decimal.Decimal, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return decimal.Zero, err
	}
	return uow.Accounts().GetBrokerBalance(ctx, brokerID)
}

func toAccountDTO(a *entity.Account) dto.Account {
	return dto.Account{ID: a.ID, Name: a.Name, BrokerID: a.BrokerID}
}
