package usecase

import "errors"

// Domain errors for transaction operations.
var (
	// ErrUnknownTransactionKind indicates a kind tag outside the three
	// known variants. Always a hard failure, never defaulted.
	ErrUnknownTransactionKind = errors.New("unknown transaction kind")

	// ErrKindImmutable indicates an update payload whose kind tag
	// disagrees with the persisted transaction. The kind cannot change
	// after creation.
	ErrKindImmutable = errors.New("transaction kind cannot change")

	// ErrTickerRequired indicates a stock transaction without a ticker
	// symbol.
	ErrTickerRequired = errors.New("stock transaction ticker cannot be empty")
)
