// Package repository defines the persistence contracts consumed by the
// usecase layer, independent of the storage implementation.
package repository

import "errors"

// Errors shared by all repository implementations. Validation errors are
// returned before any store interaction; ErrNotFound is the sentinel for an
// expected "absent" condition and must never be confused with a validation
// failure. Store-level failures are propagated as-is, wrapped at most with
// ErrConstraintViolation when the database rejects a constraint.
var (
	// ErrNotFound indicates that no entity exists with the requested id.
	ErrNotFound = errors.New("entity not found")

	// ErrNilEntity indicates that a nil entity was passed to a write operation.
	ErrNilEntity = errors.New("entity cannot be nil")

	// ErrNilPredicate indicates that Find was called without a predicate.
	ErrNilPredicate = errors.New("predicate cannot be nil")

	// ErrEmptyID indicates that an empty identifier was used for a lookup.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrAccountNameRequired indicates an account write with an empty name.
	// This invariant is enforced at the repository boundary, not just the
	// API boundary.
	ErrAccountNameRequired = errors.New("account name cannot be empty")

	// ErrNilDependency indicates a unit of work constructed with a missing
	// dependency.
	ErrNilDependency = errors.New("unit of work dependency cannot be nil")

	// ErrConstraintViolation wraps database unique or foreign key
	// constraint failures.
	ErrConstraintViolation = errors.New("constraint violation")
)
