// Package dto defines request bodies for the brokers HTTP transport layer.
package dto

// BrokerCreateReq represents the request body for POST /brokers.
type BrokerCreateReq struct {
	Name string `json:"name" binding:"required"`
}

// BrokerUpdateReq represents the request body for PUT /brokers/:id.
type BrokerUpdateReq struct {
	Name string `json:"name" binding:"required"`
}
