// Package usecase implements the business logic for transaction operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// TransactionUsecase orchestrates transaction persistence. All mapping
// between entities and representations routes through the factory so the
// kind-specific fields survive every path.
type TransactionUsecase struct {
	uowFactory repository.UnitOfWorkFactory
	factory    *TransactionFactory
}

// NewTransactionUsecase creates a new TransactionUsecase with the given
// unit of work factory.
func NewTransactionUsecase(f repository.UnitOfWorkFactory) *TransactionUsecase {
	return &TransactionUsecase{uowFactory: f, factory: NewTransactionFactory()}
}

// AddTransaction persists a new transaction of the kind named by the payload
// tag and returns its representation carrying the generated id.
func (u *TransactionUsecase) AddTransaction(ctx context.Context, d dto.Transaction) (dto.Transaction, error) {
	transaction, err := u.factory.CreateTransaction(d)
	if err != nil {
		return dto.Transaction{}, err
	}

	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Transaction{}, err
	}

	if err := uow.Transactions().Add(ctx, transaction); err != nil {
		return dto.Transaction{}, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return dto.Transaction{}, err
	}
	slog.Info("added transaction", "id", transaction.ID, "kind", transaction.Kind, "account_id", transaction.AccountID)

	return u.factory.CreateDTO(transaction)
}

// GetAllTransactions returns every transaction, each mapped through the
// factory to preserve its kind.
func (u *TransactionUsecase) GetAllTransactions(ctx context.Context) ([]dto.Transaction, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return nil, err
	}

	transactions, err := uow.Transactions().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(transactions)
}

// GetTransactionByID returns the transaction with the given id, or
// repository.ErrNotFound.
func (u *TransactionUsecase) GetTransactionByID(ctx context.Context, id uuid.UUID) (dto.Transaction, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Transaction{}, err
	}

	transaction, err := uow.Transactions().Get(ctx, id)
	if err != nil {
		return dto.Transaction{}, err
	}
	return u.factory.CreateDTO(transaction)
}

// UpdateTransaction merges the caller-supplied fields onto the stored
// transaction. The kind is re-resolved from the persisted entity — it cannot
// change after creation — so stock fields are merged only when the stored
// transaction is a stock transaction. A payload tag that disagrees with the
// stored kind is rejected.
func (u *TransactionUsecase) UpdateTransaction(ctx context.Context, d dto.Transaction) error {
	if d.ID == uuid.Nil {
		return repository.ErrEmptyID
	}

	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	transaction, err := uow.Transactions().Get(ctx, d.ID)
	if err != nil {
		return err
	}

	if d.Type != "" && entity.TransactionKind(d.Type) != transaction.Kind {
		return ErrKindImmutable
	}

	transaction.Amount = d.Amount
	transaction.Commission = d.Commission
	transaction.Date = d.Date
	transaction.AccountID = d.AccountID
	if transaction.Kind == entity.TransactionKindStock {
		if d.Ticker == "" {
			return ErrTickerRequired
		}
		transaction.Stock = entity.StockDetails{Ticker: d.Ticker, Shares: d.Shares}
	}

	if err := uow.Transactions().Update(ctx, transaction); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("updated transaction", "id", transaction.ID, "kind", transaction.Kind)
	return nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent transaction is a logged no-op.
func (u *TransactionUsecase) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	transaction, err := uow.Transactions().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("no transaction to delete", "id", id)
			return nil
		}
		return err
	}

	if err := uow.Transactions().Delete(ctx, transaction); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("deleted transaction", "id", id)
	return nil
}

// GetTransactionsByAccountID returns all transactions recorded against the
// given account.
func (u *TransactionUsecase) GetTransactionsByAccountID(ctx context.Context, accountID uuid.UUID) ([]dto.Transaction, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return nil, err
	}

	transactions, err := uow.Transactions().GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return u.toDTOs(transactions)
}

func (u *TransactionUsecase) toDTOs(transactions []*entity.Transaction) ([]dto.Transaction, error) {
	out := make([]dto.Transaction, len(transactions))
	for i, t := range transactions {
		d, err := u.factory.CreateDTO(t)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
