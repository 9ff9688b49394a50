package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// TransactionRepository persists transactions of all three kinds in one
// table, discriminated by the transaction_type column.
type TransactionRepository struct {
	*Repository[entity.Transaction, *entity.Transaction]
}

// Compile-time check that TransactionRepository implements the domain
// contract.
var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a transaction repository bound to the
// given session.
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{Repository: NewRepository[entity.Transaction, *entity.Transaction](db)}
}

// GetByAccountID returns all transactions recorded against the given
// account. Ordering is unspecified; callers needing chronological order sort
// by Date themselves.
func (r *TransactionRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	if accountID == uuid.Nil {
		return nil, repository.ErrEmptyID
	}
	return r.Find(ctx, func(t *entity.Transaction) bool { return t.AccountID == accountID })
}
