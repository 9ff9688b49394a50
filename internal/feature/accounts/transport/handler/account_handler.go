// Package handler provides the HTTP handlers for the accounts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domaindto "investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/repository"
	"investment_tracking/internal/feature/accounts/transport/http/dto"
)

// AccountUsecase defines the account operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AccountUsecase interface {
	AddAccount(ctx context.Context, d domaindto.Account) (domaindto.Account, error)
	GetAllAccounts(ctx context.Context) ([]domaindto.Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (domaindto.Account, error)
	UpdateAccount(ctx context.Context, d domaindto.Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	GetAccountsByBrokerID(ctx context.Context, brokerID uuid.UUID) ([]domaindto.Account, error)
	GetBrokerBalance(ctx context.Context, brokerID uuid.UUID) (decimal.Decimal, error)
}

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	uc AccountUsecase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(uc AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create handles POST /accounts and responds 201 with the stored
// representation.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.AccountCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("account create validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	account, err := h.uc.AddAccount(c.Request.Context(), domaindto.Account{Name: req.Name, BrokerID: req.BrokerID})
	if err != nil {
		slog.Warn("account create failed", "error", err)
		switch {
		case errors.Is(err, repository.ErrAccountNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrConstraintViolation):
			// unknown broker id
			c.JSON(http.StatusBadRequest, gin.H{"error": "broker does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		}
		return
	}
	c.JSON(http.StatusCreated, account)
}

// List handles GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.uc.GetAllAccounts(c.Request.Context())
	if err != nil {
		slog.Error("account list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// GetByID handles GET /accounts/:id and responds 404 when absent.
func (h *AccountHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	account, err := h.uc.GetAccountByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		slog.Error("account get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get account"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// Update handles PUT /accounts/:id and responds 204 on success. Only the
// name can change; balance and broker are never taken from the payload.
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.AccountUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("account update validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.uc.UpdateAccount(c.Request.Context(), domaindto.Account{ID: id, Name: req.Name}); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, repository.ErrAccountNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("account update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update account"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /accounts/:id. Deleting an absent account still
// responds 204; the operation is idempotent.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.uc.DeleteAccount(c.Request.Context(), id); err != nil {
		slog.Error("account delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListByBroker handles GET /brokers/:id/accounts.
func (h *AccountHandler) ListByBroker(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	accounts, err := h.uc.GetAccountsByBrokerID(c.Request.Context(), brokerID)
	if err != nil {
		slog.Error("accounts by broker failed", "error", err, "broker_id", brokerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// BrokerBalance handles GET /brokers/:id/balance. A broker without accounts
// reports a balance of zero.
func (h *AccountHandler) BrokerBalance(c *gin.Context) {
	brokerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	balance, err := h.uc.GetBrokerBalance(c.Request.Context(), brokerID)
	if err != nil {
		slog.Error("broker balance failed", "error", err, "broker_id", brokerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get broker balance"})
		return
	}
	c.JSON(http.StatusOK, dto.BrokerBalanceResp{BrokerID: brokerID, Balance: balance})
}
