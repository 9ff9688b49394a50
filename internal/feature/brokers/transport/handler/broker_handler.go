// Package handler provides the HTTP handlers for the brokers feature.
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
	"investment_tracking/internal/feature/brokers/transport/http/dto"
	"investment_tracking/internal/feature/brokers/usecase"
)

// BrokerUsecase defines the broker operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type BrokerUsecase interface {
	AddBroker(ctx context.Context, d domaindto.Broker) (domaindto.Broker, error)
	GetAllBrokers(ctx context.Context) ([]domaindto.Broker, error)
	GetBrokerByID(ctx context.Context, id uuid.UUID) (domaindto.Broker, error)
	UpdateBroker(ctx context.Context, d domaindto.Broker) error
	DeleteBroker(ctx context.Context, id uuid.UUID) error
}

// BrokerHandler handles HTTP requests for broker operations.
type BrokerHandler struct {
	uc BrokerUsecase
}

// NewBrokerHandler creates a new BrokerHandler.
func NewBrokerHandler(uc BrokerUsecase) *BrokerHandler {
	return &BrokerHandler{uc: uc}
}

// Create handles POST /brokers and responds 201 with the stored
// representation.
func (h *BrokerHandler) Create(c *gin.Context) {
	var req dto.BrokerCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("broker create validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	broker, err := h.uc.AddBroker(c.Request.Context(), domaindto.Broker{Name: req.Name})
	if err != nil {
		slog.Warn("broker create failed", "error", err)
		if errors.Is(err, usecase.ErrBrokerNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create broker"})
		return
	}
	c.JSON(http.StatusCreated, broker)
}

// List handles GET /brokers.
func (h *BrokerHandler) List(c *gin.Context) {
	brokers, err := h.uc.GetAllBrokers(c.Request.Context())
	if err != nil {
		slog.Error("broker list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list brokers"})
		return
	}
	c.JSON(http.StatusOK, brokers)
}

// GetByID handles GET /brokers/:id and responds 404 when absent.
func (h *BrokerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	broker, err := h.uc.GetBrokerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "broker not found"})
			return
		}
		slog.Error("broker get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get broker"})
		return
	}
	c.JSON(http.StatusOK, broker)
}

// Update handles PUT /brokers/:id and responds 204 on success.
func (h *BrokerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req dto.BrokerUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("broker update validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.uc.UpdateBroker(c.Request.Context(), domaindto.Broker{ID: id, Name: req.Name}); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "broker not found"})
		case errors.Is(err, usecase.ErrBrokerNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			slog.Error("broker update failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update broker"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /brokers/:id. Deleting an absent broker still
// responds 204; the operation is idempotent.
func (h *BrokerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.uc.DeleteBroker(c.Request.Context(), id); err != nil {
		slog.Error("broker delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete broker"})
		return
	}
	c.Status(http.StatusNoContent)
}
