// Package dto defines request and response bodies for the accounts HTTP
// transport layer.
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreateReq represents the request body for POST /accounts.
type AccountCreateReq struct {
	Name     string    `json:"name" binding:"required"`
	BrokerID uuid.UUID `json:"brokerId" binding:"required"`
}

// AccountUpdateReq represents the request body for PUT /accounts/:id.
// Balance and broker are deliberately absent; neither can be changed through
// an update.
type AccountUpdateReq struct {
	Name string `json:"name" binding:"required"`
}

// BrokerBalanceResp represents the response body for GET /brokers/:id/balance.
type BrokerBalanceResp struct {
	BrokerID uuid.UUID       `json:"brokerId"`
	Balance  decimal.Decimal `json:"balance"`
}
