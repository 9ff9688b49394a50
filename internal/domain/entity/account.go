package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a brokerage account owned by exactly one broker.
type Account struct {
	// ID is the unique identifier for the account.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Name is the display name of the account. It must not be empty;
	// the account repository enforces this before any write reaches
	// the store.
	Name string `gorm:"size:255;not null"`

	// Balance is the current monetary balance of the account. It is a
	// derived field maintained by transaction posting, never set through
	// ordinary update paths.
	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	// BrokerID references the owning broker. It is required and immutable
	// after creation.
	BrokerID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Transactions are the financial events recorded against this account.
	Transactions []Transaction `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// EntityID returns the account's unique identifier.
func (a *Account) EntityID() uuid.UUID { return a.ID }

// SetEntityID assigns the account's unique identifier.
func (a *Account) SetEntityID(id uuid.UUID) { a.ID = id }
