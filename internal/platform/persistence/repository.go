// Package persistence implements the repository and unit of work contracts
// on top of GORM. Writes are staged in memory and flushed inside one database
// transaction when the owning unit of work commits.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opDelete
)

// pendingOp is one staged write awaiting commit.
type pendingOp[PT any] struct {
	kind   opKind
	entity PT
}

// Repository is a generic GORM-backed repository for entity type T.
// PT is the pointer type of T and must implement entity.Entity.
// A Repository is not safe for concurrent mutation; each unit of work owns
// its own instances.
type Repository[T any, PT interface {
	*T
	entity.Entity
}] struct {
	db      *gorm.DB
	pending []pendingOp[PT]
}

// NewRepository creates a repository bound to the given session.
func NewRepository[T any, PT interface {
	*T
	entity.Entity
}](db *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: db}
}

// Add stages e for insertion, assigning a new id when none is set.
func (r *Repository[T, PT]) Add(ctx context.Context, e PT) error {
	if e == nil {
		return repository.ErrNilEntity
	}
	if e.EntityID() == uuid.Nil {
		e.SetEntityID(uuid.New())
	}
	r.pending = append(r.pending, pendingOp[PT]{kind: opAdd, entity: e})
	return nil
}

// AddMany stages a batch of insertions with per-entity Add semantics.
func (r *Repository[T, PT]) AddMany(ctx context.Context, entities []PT) error {
	for _, e := range entities {
		if err := r.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entity with the given id, or repository.ErrNotFound.
func (r *Repository[T, PT]) Get(ctx context.Context, id uuid.UUID) (PT, error) {
	if id == uuid.Nil {
		return nil, repository.ErrEmptyID
	}
	var out T
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, translateError(err)
	}
	return PT(&out), nil
}

// GetAll returns every entity of type T. Ordering is unspecified.
func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]PT, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

// Find returns all entities satisfying the predicate. The predicate runs in
// memory against every row of T; no index is consulted.
func (r *Repository[T, PT]) Find(ctx context.Context, predicate func(PT) bool) ([]PT, error) {
	if predicate == nil {
		return nil, repository.ErrNilPredicate
	}
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]PT, 0, len(all))
	for _, e := range all {
		if predicate(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Update stages a full replacement of the stored row. The row must exist at
// the time of the call; otherwise repository.ErrNotFound is returned and
// nothing is staged.
func (r *Repository[T, PT]) Update(ctx context.Context, e PT) error {
	if e == nil {
		return repository.ErrNilEntity
	}
	if _, err := r.Get(ctx, e.EntityID()); err != nil {
		return err
	}
	r.pending = append(r.pending, pendingOp[PT]{kind: opUpdate, entity: e})
	return nil
}

// UpdateMany stages a batch of updates with per-entity Update semantics.
func (r *Repository[T, PT]) UpdateMany(ctx context.Context, entities []PT) error {
	for _, e := range entities {
		if err := r.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Delete stages removal of e. Callers check existence first if they need a
// guarantee; removing an absent row is a no-op at commit time.
func (r *Repository[T, PT]) Delete(ctx context.Context, e PT) error {
	if e == nil {
		return repository.ErrNilEntity
	}
	r.pending = append(r.pending, pendingOp[PT]{kind: opDelete, entity: e})
	return nil
}

// DeleteMany stages removal of a batch of entities.
func (r *Repository[T, PT]) DeleteMany(ctx context.Context, entities []PT) error {
	for _, e := range entities {
		if err := r.Delete(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// flush applies all staged operations through tx in staging order. It is
// called by the unit of work inside one database transaction.
func (r *Repository[T, PT]) flush(tx *gorm.DB) error {
	for _, op := range r.pending {
		switch op.kind {
		case opAdd:
			if err := tx.Create(op.entity).Error; err != nil {
				return translateError(err)
			}
		case opUpdate:
			if err := tx.Save(op.entity).Error; err != nil {
				return translateError(err)
			}
		case opDelete:
			if err := tx.Delete(new(T), "id = ?", op.entity.EntityID()).Error; err != nil {
				return translateError(err)
			}
		}
	}
	return nil
}

// discard drops all staged operations. The unit of work discards after every
// commit attempt so a failed commit leaves no lingering staged state.
func (r *Repository[T, PT]) discard() {
	r.pending = r.pending[:0]
}

// translateError maps Postgres constraint failures onto the shared sentinel
// while keeping the driver error in the chain. Other store errors pass
// through unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: foreign_key_violation, 23505: unique_violation
		switch pgErr.Code {
		case "23503", "23505":
			return fmt.Errorf("%w: %v", repository.ErrConstraintViolation, err)
		}
	}
	return err
}
