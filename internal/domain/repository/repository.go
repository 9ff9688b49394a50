package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"investment_tracking/internal/domain/entity"
)

// Repository provides generic CRUD over one entity type. Write operations
// (Add, Update, Delete and their batch forms) only stage work; nothing is
// visible in the store until the owning unit of work commits. Read operations
// go straight to the store.
type Repository[T any] interface {
	// Add stages the entity for insertion. A nil entity is rejected before
	// any store interaction; an entity with a uuid.Nil id receives a
	// freshly generated one.
	Add(ctx context.Context, e *T) error

	// AddMany stages a batch of entities with per-entity Add semantics.
	AddMany(ctx context.Context, entities []*T) error

	// Get returns the entity with the given id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// GetAll returns every entity of type T. Ordering is unspecified.
	GetAll(ctx context.Context) ([]*T, error)

	// Find returns all entities satisfying the predicate. A nil predicate
	// is rejected. No index is consulted; correctness over performance.
	Find(ctx context.Context, predicate func(*T) bool) ([]*T, error)

	// Update stages a full replacement of the stored row identified by the
	// entity's id. It fails with ErrNotFound if no such row exists.
	// Callers wanting a partial update must fetch, merge and then Update.
	Update(ctx context.Context, e *T) error

	// UpdateMany stages a batch of updates with per-entity Update semantics.
	UpdateMany(ctx context.Context, entities []*T) error

	// Delete stages removal of the entity. Existence checks are the
	// caller's responsibility.
	Delete(ctx context.Context, e *T) error

	// DeleteMany stages removal of a batch of entities.
	DeleteMany(ctx context.Context, entities []*T) error
}

// BrokerRepository persists brokers. It adds no queries beyond the generic
// contract.
type BrokerRepository interface {
	Repository[entity.Broker]
}

// AccountRepository persists accounts and answers broker-scoped queries.
// Its Add and Update reject accounts with an empty name before delegating
// to the generic behavior.
type AccountRepository interface {
	Repository[entity.Account]

	// GetByBrokerID returns all accounts owned by the given broker.
	GetByBrokerID(ctx context.Context, brokerID uuid.UUID) ([]*entity.Account, error)

	// GetBrokerBalance returns the sum of Balance over the broker's
	// accounts, decimal.Zero when the broker owns none.
	GetBrokerBalance(ctx context.Context, brokerID uuid.UUID) (decimal.Decimal, error)
}

// TransactionRepository persists transactions of all kinds.
type TransactionRepository interface {
	Repository[entity.Transaction]

	// GetByAccountID returns all transactions recorded against the given
	// account, any kind, ordering unspecified.
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)
}

// UnitOfWork scopes one persistence session. All repository mutations of one
// logical operation go through a single unit of work, and SaveChanges is
// called exactly once to commit them atomically.
type UnitOfWork interface {
	// Brokers returns the broker repository bound to this session.
	Brokers() BrokerRepository

	// Accounts returns the account repository bound to this session.
	Accounts() AccountRepository

	// Transactions returns the transaction repository bound to this session.
	Transactions() TransactionRepository

	// SaveChanges commits all staged work across the three repositories as
	// one atomic unit. On failure nothing is applied and all staged work
	// is discarded.
	SaveChanges(ctx context.Context) error
}

// UnitOfWorkFactory creates a fresh unit of work per logical operation.
// Instances must never be shared across concurrent operations.
type UnitOfWorkFactory interface {
	New() (UnitOfWork, error)
}
