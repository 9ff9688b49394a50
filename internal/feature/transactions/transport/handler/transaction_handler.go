// Package handler provides the HTTP handlers for the transactions feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaindto "investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/repository"
	"investment_tracking/internal/feature/transactions/usecase"
)

// TransactionUsecase defines the transaction operations used by this
// handler. Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (usecase).
type TransactionUsecase interface {
	AddTransaction(ctx context.Context, d domaindto.Transaction) (domaindto.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]domaindto.Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (domaindto.Transaction, error)
	UpdateTransaction(ctx context.Context, d domaindto.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	GetTransactionsByAccountID(ctx context.Context, accountID uuid.UUID) ([]domaindto.Transaction, error)
}

// TransactionHandler handles HTTP requests for transaction operations.
type TransactionHandler struct {
	uc TransactionUsecase
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(uc TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create handles POST /transactions. The body's type tag selects the kind;
// an unrecognized tag responds 400.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req domaindto.Transaction
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("transaction create validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	transaction, err := h.uc.AddTransaction(c.Request.Context(), req)
	if err != nil {
		slog.Warn("transaction create failed", "error", err)
		switch {
		case errors.Is(err, usecase.ErrUnknownTransactionKind),
			errors.Is(err, usecase.ErrTickerRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrConstraintViolation):
			// unknown account id
			c.JSON(http.StatusBadRequest, gin.H{"error": "account does not exist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction"})
		}
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.uc.GetAllTransactions(c.Request.Context())
	if err != nil {
		slog.Error("transaction list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetByID handles GET /transactions/:id and responds 404 when absent.
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	transaction, err := h.uc.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		slog.Error("transaction get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transaction"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Update handles PUT /transactions/:id and responds 204 on success. The
// kind cannot change; a disagreeing type tag responds 400.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req domaindto.Transaction
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("transaction update validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.ID = id

	if err := h.uc.UpdateTransaction(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		case errors.Is(err, usecase.ErrKindImmutable),
			errors.Is(err, usecase.ErrTickerRequired),
			errors.Is(err, repository.ErrEmptyID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("transaction update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transaction"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /transactions/:id. Deleting an absent transaction
// still responds 204; the operation is idempotent.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.uc.DeleteTransaction(c.Request.Context(), id); err != nil {
		slog.Error("transaction delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListByAccount handles GET /accounts/:id/transactions.
func (h *TransactionHandler) ListByAccount(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	transactions, err := h.uc.GetTransactionsByAccountID(c.Request.Context(), accountID)
	if err != nil {
		slog.Error("transactions by account failed", "error", err, "account_id", accountID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}
