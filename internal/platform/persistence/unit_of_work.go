package persistence

import (
	"context"

	"gorm.io/gorm"

	"investment_tracking/internal/domain/repository"
)

// flusher is satisfied by every repository in this package.
type flusher interface {
	flush(tx *gorm.DB) error
	discard()
}

// UnitOfWork scopes one GORM session and the three repositories bound to it.
// SaveChanges commits everything they staged inside one database transaction.
type UnitOfWork struct {
	db           *gorm.DB
	brokers      *BrokerRepository
	accounts     *AccountRepository
	transactions *TransactionRepository
}

// Compile-time check that UnitOfWork implements the domain contract.
var _ repository.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over the given session and
// repositories. Every dependency is required.
func NewUnitOfWork(db *gorm.DB, brokers *BrokerRepository, accounts *AccountRepository, transactions *TransactionRepository) (*UnitOfWork, error) {
	if db == nil || brokers == nil || accounts == nil || transactions == nil {
		return nil, repository.ErrNilDependency
	}
	return &UnitOfWork{
		db:           db,
		brokers:      brokers,
		accounts:     accounts,
		transactions: transactions,
	}, nil
}

// Brokers returns the broker repository bound to this session.
func (u *UnitOfWork) Brokers() repository.BrokerRepository { return u.brokers }

// Accounts returns the account repository bound to this session.
func (u *UnitOfWork) Accounts() repository.AccountRepository { return u.accounts }

// Transactions returns the transaction repository bound to this session.
func (u *UnitOfWork) Transactions() repository.TransactionRepository { return u.transactions }

// SaveChanges flushes all staged work across the three repositories inside
// one database transaction. On failure GORM rolls back and nothing is
// applied. Staged work is discarded after every attempt, success or not.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	repos := []flusher{u.brokers, u.accounts, u.transactions}
	defer func() {
		for _, r := range repos {
			r.discard()
		}
	}()
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range repos {
			if err := r.flush(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// UnitOfWorkFactory builds a fresh unit of work per logical operation.
type UnitOfWorkFactory struct {
	db *gorm.DB
}

// Compile-time check that UnitOfWorkFactory implements the domain contract.
var _ repository.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)

// NewUnitOfWorkFactory creates a factory over the given database handle.
func NewUnitOfWorkFactory(db *gorm.DB) (*UnitOfWorkFactory, error) {
	if db == nil {
		return nil, repository.ErrNilDependency
	}
	return &UnitOfWorkFactory{db: db}, nil
}

// New creates a unit of work over a fresh session. Each external call gets
// its own; instances are never shared across requests.
func (f *UnitOfWorkFactory) New() (repository.UnitOfWork, error) {
	session := f.db.Session(&gorm.Session{NewDB: true})
	return NewUnitOfWork(
		session,
		NewBrokerRepository(session),
		NewAccountRepository(session),
		NewTransactionRepository(session),
	)
}
