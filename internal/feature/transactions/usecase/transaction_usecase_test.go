package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
	"investment_tracking/internal/platform/persistence"
)

// countingFactory wraps the real factory and records how often units of work
// are created and committed.
type countingFactory struct {
	inner   repository.UnitOfWorkFactory
	created int
	commits int
}

func (f *countingFactory) New() (repository.UnitOfWork, error) {
	uow, err := f.inner.New()
	if err != nil {
		return nil, err
	}
	f.created++
	return &countingUnitOfWork{UnitOfWork: uow, commits: &f.commits}, nil
}

type countingUnitOfWork struct {
	repository.UnitOfWork
	commits *int
}

func (u *countingUnitOfWork) SaveChanges(ctx context.Context) error {
	*u.commits++
	return u.UnitOfWork.SaveChanges(ctx)
}

func setupUsecase(t *testing.T) (*TransactionUsecase, *countingFactory, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&entity.Broker{}, &entity.Account{}, &entity.Transaction{}))

	inner, err := persistence.NewUnitOfWorkFactory(db)
	require.NoError(t, err)

	factory := &countingFactory{inner: inner}
	return NewTransactionUsecase(factory), factory, db
}

func seedAccount(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	brokerID := uuid.New()
	require.NoError(t, db.Create(&entity.Broker{ID: brokerID, Name: "Acme"}).Error)
	id := uuid.New()
	require.NoError(t, db.Create(&entity.Account{ID: id, Name: "Brokerage-1", BrokerID: brokerID}).Error)
	return id
}

func TestTransactionUsecase_AddTransaction(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("stock keeps its kind fields through persistence", func(t *testing.T) {
		uc, factory, db := setupUsecase(t)
		accountID := seedAccount(t, db)

		got, err := uc.AddTransaction(context.Background(), dto.Transaction{
			Type:       "Stock",
			Amount:     decimal.NewFromInt(1000),
			Commission: decimal.NewFromInt(10),
			Date:       date,
			AccountID:  accountID,
			Ticker:     "AAPL",
			Shares:     10,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, "Stock", got.Type)
		assert.Equal(t, "AAPL", got.Ticker)
		assert.EqualValues(t, 10, got.Shares)
		assert.Equal(t, 1, factory.created)
		assert.Equal(t, 1, factory.commits)
	})

	t.Run("unknown kind never reaches the store", func(t *testing.T) {
		uc, factory, db := setupUsecase(t)
		accountID := seedAccount(t, db)

		_, err := uc.AddTransaction(context.Background(), dto.Transaction{Type: "Dividend", Date: date, AccountID: accountID})
		assert.ErrorIs(t, err, ErrUnknownTransactionKind)
		assert.Zero(t, factory.created)
	})
}

func TestTransactionUsecase_GetTransactionByID(t *testing.T) {
	uc, _, db := setupUsecase(t)
	accountID := seedAccount(t, db)
	id := uuid.New()
	require.NoError(t, db.Create(&entity.Transaction{
		ID:        id,
		Kind:      entity.TransactionKindIncome,
		Amount:    decimal.NewFromInt(25),
		Date:      time.Now(),
		AccountID: accountID,
	}).Error)

	got, err := uc.GetTransactionByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Income", got.Type)

	_, err = uc.GetTransactionByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransactionUsecase_UpdateTransaction(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seedStock := func(t *testing.T, db *gorm.DB, accountID uuid.UUID) uuid.UUID {
		t.Helper()
		id := uuid.New()
		require.NoError(t, db.Create(&entity.Transaction{
			ID:        id,
			Kind:      entity.TransactionKindStock,
			Amount:    decimal.NewFromInt(1000),
			Date:      date,
			AccountID: accountID,
			Stock:     entity.StockDetails{Ticker: "AAPL", Shares: 10},
		}).Error)
		return id
	}

	t.Run("merges fields onto the stored transaction", func(t *testing.T) {
		uc, _, db := setupUsecase(t)
		accountID := seedAccount(t, db)
		id := seedStock(t, db, accountID)

		err := uc.UpdateTransaction(context.Background(), dto.Transaction{
			ID:        id,
			Amount:    decimal.NewFromInt(1200),
			Date:      date.AddDate(0, 0, 1),
			AccountID: accountID,
			Ticker:    "MSFT",
			Shares:    4,
		})
		require.NoError(t, err)

		got, err := uc.GetTransactionByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Stock", got.Type, "kind survives the update untouched")
		assert.Equal(t, "MSFT", got.Ticker)
		assert.EqualValues(t, 4, got.Shares)
		assert.Equal(t, "1200", got.Amount.String())
	})

	t.Run("the kind cannot change after creation", func(t *testing.T) {
		uc, _, db := setupUsecase(t)
		accountID := seedAccount(t, db)
		id := seedStock(t, db, accountID)

		err := uc.UpdateTransaction(context.Background(), dto.Transaction{
			ID:        id,
			Type:      "Income",
			Amount:    decimal.NewFromInt(5),
			Date:      date,
			AccountID: accountID,
		})
		assert.ErrorIs(t, err, ErrKindImmutable)
	})

	t.Run("a stock update requires a ticker", func(t *testing.T) {
		uc, _, db := setupUsecase(t)
		accountID := seedAccount(t, db)
		id := seedStock(t, db, accountID)

		err := uc.UpdateTransaction(context.Background(), dto.Transaction{
			ID:        id,
			Amount:    decimal.NewFromInt(1200),
			Date:      date,
			AccountID: accountID,
		})
		assert.ErrorIs(t, err, ErrTickerRequired)
	})

	t.Run("reports an absent transaction", func(t *testing.T) {
		uc, _, _ := setupUsecase(t)
		err := uc.UpdateTransaction(context.Background(), dto.Transaction{ID: uuid.New(), Date: date})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("rejects a payload without an id", func(t *testing.T) {
		uc, factory, _ := setupUsecase(t)
		err := uc.UpdateTransaction(context.Background(), dto.Transaction{Date: date})
		assert.ErrorIs(t, err, repository.ErrEmptyID)
		assert.Zero(t, factory.created)
	})
}

func TestTransactionUsecase_DeleteTransaction(t *testing.T) {
	uc, factory, db := setupUsecase(t)
	accountID := seedAccount(t, db)
	id := uuid.New()
	require.NoError(t, db.Create(&entity.Transaction{
		ID:        id,
		Kind:      entity.TransactionKindAccount,
		Amount:    decimal.NewFromInt(100),
		Date:      time.Now(),
		AccountID: accountID,
	}).Error)

	require.NoError(t, uc.DeleteTransaction(context.Background(), id))
	_, err := uc.GetTransactionByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, uc.DeleteTransaction(context.Background(), id))
	assert.Equal(t, 1, factory.commits, "the second delete must not commit")
}

func TestTransactionUsecase_GetTransactionsByAccountID(t *testing.T) {
	uc, _, db := setupUsecase(t)
	accountID := seedAccount(t, db)
	otherID := seedAccount(t, db)

	for _, tr := range []*entity.Transaction{
		{ID: uuid.New(), Kind: entity.TransactionKindAccount, Amount: decimal.NewFromInt(100), Date: time.Now(), AccountID: accountID},
		{ID: uuid.New(), Kind: entity.TransactionKindIncome, Amount: decimal.NewFromInt(5), Date: time.Now(), AccountID: accountID},
		{ID: uuid.New(), Kind: entity.TransactionKindIncome, Amount: decimal.NewFromInt(7), Date: time.Now(), AccountID: otherID},
	} {
		require.NoError(t, db.Create(tr).Error)
	}

	got, err := uc.GetTransactionsByAccountID(context.Background(), accountID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, d := range got {
		assert.Equal(t, accountID, d.AccountID)
	}
}
