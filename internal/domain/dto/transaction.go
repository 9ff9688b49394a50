package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the external representation of a transaction of any kind.
// Type carries the kind tag ("Stock", "Account" or "Income"); Ticker and
// Shares are only meaningful when Type is "Stock".
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Date       time.Time       `json:"date"`
	AccountID  uuid.UUID       `json:"accountId"`
	Ticker     string          `json:"ticker,omitempty"`
	Shares     int64           `json:"shares,omitempty"`
}
