package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// AccountRepository persists accounts. The non-empty name invariant lives
// here rather than at the API boundary because the entity itself cannot
// express it.
type AccountRepository struct {
	*Repository[entity.Account, *entity.Account]
}

// Compile-time check that AccountRepository implements the domain contract.
var _ repository.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an account repository bound to the given
// session.
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{Repository: NewRepository[entity.Account, *entity.Account](db)}
}

// Add stages the account for insertion after validating its name.
func (r *AccountRepository) Add(ctx context.Context, a *entity.Account) error {
	if a == nil {
		return repository.ErrNilEntity
	}
	if a.Name == "" {
		return repository.ErrAccountNameRequired
	}
	return r.Repository.Add(ctx, a)
}

// Update stages a full replacement of the account after validating its name.
// The name check runs before the existence lookup, so an invalid name fails
// validation regardless of whether the target account exists.
func (r *AccountRepository) Update(ctx context.Context, a *entity.Account) error {
	if a == nil {
		return repository.ErrNilEntity
	}
	if a.Name == "" {
		return repository.ErrAccountNameRequired
	}
	return r.Repository.Update(ctx, a)
}

// GetByBrokerID returns all accounts owned by the given broker.
func (r *AccountRepository) GetByBrokerID(ctx context.Context, brokerID uuid.UUID) ([]*entity.Account, error) {
	if brokerID == uuid.Nil {
		return nil, repository.ErrEmptyID
	}
	return r.Find(ctx, func(a *entity.Account) bool { return a.BrokerID == brokerID })
}

// GetBrokerBalance returns the sum of Balance over the broker's accounts,
// decimal.Zero when the broker owns none.
func (r *AccountRepository) GetBrokerBalance(ctx context.Context, brokerID uuid.UUID) (decimal.Decimal, error) {
	accounts, err := r.GetByBrokerID(ctx, brokerID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total, nil
}
