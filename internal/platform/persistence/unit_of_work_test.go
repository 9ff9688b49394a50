package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

func TestNewUnitOfWork_RejectsNilDependencies(t *testing.T) {
	db := setupTestDB(t)
	brokers := NewBrokerRepository(db)
	accounts := NewAccountRepository(db)
	transactions := NewTransactionRepository(db)

	tests := []struct {
		name string
		run  func() error
	}{
		{"nil db", func() error {
			_, err := NewUnitOfWork(nil, brokers, accounts, transactions)
			return err
		}},
		{"nil broker repository", func() error {
			_, err := NewUnitOfWork(db, nil, accounts, transactions)
			return err
		}},
		{"nil account repository", func() error {
			_, err := NewUnitOfWork(db, brokers, nil, transactions)
			return err
		}},
		{"nil transaction repository", func() error {
			_, err := NewUnitOfWork(db, brokers, accounts, nil)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), repository.ErrNilDependency)
		})
	}
}

func TestNewUnitOfWorkFactory_RejectsNilDB(t *testing.T) {
	_, err := NewUnitOfWorkFactory(nil)
	assert.ErrorIs(t, err, repository.ErrNilDependency)
}

func TestUnitOfWork_SaveChangesSpansRepositories(t *testing.T) {
	db := setupTestDB(t)
	uow := newTestUnitOfWork(t, db)

	broker := &entity.Broker{Name: "Acme"}
	require.NoError(t, uow.Brokers().Add(context.Background(), broker))

	account := &entity.Account{Name: "Brokerage-1", BrokerID: broker.ID}
	require.NoError(t, uow.Accounts().Add(context.Background(), account))

	transaction := &entity.Transaction{
		Kind:      entity.TransactionKindAccount,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Now(),
		AccountID: account.ID,
	}
	require.NoError(t, uow.Transactions().Add(context.Background(), transaction))

	// One commit persists all three staged writes.
	require.NoError(t, uow.SaveChanges(context.Background()))

	_, err := uow.Brokers().Get(context.Background(), broker.ID)
	assert.NoError(t, err)
	_, err = uow.Accounts().Get(context.Background(), account.ID)
	assert.NoError(t, err)
	_, err = uow.Transactions().Get(context.Background(), transaction.ID)
	assert.NoError(t, err)
}

func TestUnitOfWork_SaveChangesIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	id := uuid.New()
	require.NoError(t, db.Create(&entity.Broker{ID: id, Name: "Existing"}).Error)

	uow := newTestUnitOfWork(t, db)

	// The first add is fine; the second collides with a stored id, so the
	// whole commit must roll back.
	fresh := &entity.Broker{Name: "Fresh"}
	require.NoError(t, uow.Brokers().Add(context.Background(), fresh))
	require.NoError(t, uow.Brokers().Add(context.Background(), &entity.Broker{ID: id, Name: "Duplicate"}))

	err := uow.SaveChanges(context.Background())
	require.Error(t, err, "duplicate id should fail the commit")

	_, err = uow.Brokers().Get(context.Background(), fresh.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "no partial effects may survive a failed commit")

	// Staged work was discarded: committing again applies nothing.
	require.NoError(t, uow.SaveChanges(context.Background()))
	_, err = uow.Brokers().Get(context.Background(), fresh.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnitOfWork_DeleteBrokerCascades(t *testing.T) {
	db := setupTestDB(t)
	uow := newTestUnitOfWork(t, db)

	broker := &entity.Broker{Name: "Acme"}
	require.NoError(t, uow.Brokers().Add(context.Background(), broker))
	account := &entity.Account{Name: "Brokerage-1", BrokerID: broker.ID}
	require.NoError(t, uow.Accounts().Add(context.Background(), account))
	transaction := &entity.Transaction{
		Kind:      entity.TransactionKindIncome,
		Amount:    decimal.NewFromInt(5),
		Date:      time.Now(),
		AccountID: account.ID,
	}
	require.NoError(t, uow.Transactions().Add(context.Background(), transaction))
	require.NoError(t, uow.SaveChanges(context.Background()))

	stored, err := uow.Brokers().Get(context.Background(), broker.ID)
	require.NoError(t, err)
	require.NoError(t, uow.Brokers().Delete(context.Background(), stored))
	require.NoError(t, uow.SaveChanges(context.Background()))

	_, err = uow.Brokers().Get(context.Background(), broker.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = uow.Accounts().Get(context.Background(), account.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "accounts should be removed by the cascade")
	_, err = uow.Transactions().Get(context.Background(), transaction.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "transactions should be removed by the cascade")
}

func TestUnitOfWorkFactory_NewIsIndependent(t *testing.T) {
	db := setupTestDB(t)
	factory, err := NewUnitOfWorkFactory(db)
	require.NoError(t, err)

	first, err := factory.New()
	require.NoError(t, err)
	second, err := factory.New()
	require.NoError(t, err)
	require.NotSame(t, first, second)

	// Work staged on one unit of work must not leak into the other.
	broker := &entity.Broker{Name: "Acme"}
	require.NoError(t, first.Brokers().Add(context.Background(), broker))
	require.NoError(t, second.SaveChanges(context.Background()))

	_, err = second.Brokers().Get(context.Background(), broker.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, first.SaveChanges(context.Background()))
	_, err = second.Brokers().Get(context.Background(), broker.ID)
	assert.NoError(t, err)
}
