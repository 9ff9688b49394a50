package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the three transaction variants stored in the
// single transactions table. The value is persisted in the transaction_type
// column.
type TransactionKind string

const (
	// TransactionKindStock is a buy or sell of a security.
	TransactionKindStock TransactionKind = "Stock"

	// TransactionKindAccount is a cash movement such as a deposit,
	// withdrawal or transfer.
	TransactionKindAccount TransactionKind = "Account"

	// TransactionKindIncome is a dividend or interest style credit.
	TransactionKindIncome TransactionKind = "Income"
)

// Valid reports whether k is one of the three known transaction kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindStock, TransactionKindAccount, TransactionKindIncome:
		return true
	}
	return false
}

// StockDetails carries the fields that only exist for stock transactions.
// For the other kinds it stays at its zero value.
type StockDetails struct {
	// Ticker is the traded security's symbol, e.g. "AAPL".
	Ticker string `gorm:"size:16"`

	// Shares is the traded quantity.
	Shares int64
}

// Transaction represents a financial event belonging to one account. All
// three kinds share one table; Kind tells the variants apart.
type Transaction struct {
	// ID is the unique identifier for the transaction.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Kind discriminates the transaction variant.
	Kind TransactionKind `gorm:"column:transaction_type;size:16;not null;index"`

	// Amount is the signed monetary value of the event.
	Amount decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	// Commission is the fee charged for the event.
	Commission decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	// Date is when the event occurred.
	Date time.Time `gorm:"not null"`

	// AccountID references the owning account. It is required.
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Stock holds the stock-only fields. Zero for Account and Income kinds.
	Stock StockDetails `gorm:"embedded"`
}

// EntityID returns the transaction's unique identifier.
func (t *Transaction) EntityID() uuid.UUID { return t.ID }

// SetEntityID assigns the transaction's unique identifier.
func (t *Transaction) SetEntityID(id uuid.UUID) { t.ID = id }
