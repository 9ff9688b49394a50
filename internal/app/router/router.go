// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	accounthandler "investment_tracking/internal/feature/accounts/transport/handler"
	brokerhandler "investment_tracking/internal/feature/brokers/transport/handler"
	transactionhandler "investment_tracking/internal/feature/transactions/transport/handler"
	platformhandler "investment_tracking/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all application routes registered.
func NewRouter(brokers *brokerhandler.BrokerHandler, accounts *accounthandler.AccountHandler,
	transactions *transactionhandler.TransactionHandler) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", platformhandler.Health)

	r.POST("/brokers", brokers.Create)
	r.GET("/brokers", brokers.List)
	r.GET("/brokers/:id", brokers.GetByID)
	r.PUT("/brokers/:id", brokers.Update)
	r.DELETE("/brokers/:id", brokers.Delete)
	r.GET("/brokers/:id/accounts", accounts.ListByBroker)
	r.GET("/brokers/:id/balance", accounts.BrokerBalance)

	r.POST("/accounts", accounts.Create)
	r.GET("/accounts", accounts.List)
	r.GET("/accounts/:id", accounts.GetByID)
	r.PUT("/accounts/:id", accounts.Update)
	r.DELETE("/accounts/:id", accounts.Delete)
	r.GET("/accounts/:id/transactions", transactions.ListByAccount)

	r.POST("/transactions", transactions.Create)
	r.GET("/transactions", transactions.List)
	r.GET("/transactions/:id", transactions.GetByID)
	r.PUT("/transactions/:id", transactions.Update)
	r.DELETE("/transactions/:id", transactions.Delete)

	return r
}
