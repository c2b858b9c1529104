package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"usdc-credits.backend/internal/domain/entities"
	domainerrors "usdc-credits.backend/internal/domain/errors"
	"usdc-credits.backend/internal/interfaces/http/middleware"
	"usdc-credits.backend/internal/interfaces/http/response"
	"usdc-credits.backend/internal/usecases"
)

type purchaseService interface {
	GetDestination() (string, error)
	PurchaseCredits(ctx context.Context, userID uuid.UUID, input *entities.PurchaseCreditsInput) (*entities.PurchaseCreditsResponse, error)
	RecordExternalPayment(ctx context.Context, userID uuid.UUID, input *entities.RecordExternalPaymentInput) (*entities.RecordExternalPaymentResponse, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.CreditTransaction, int, error)
}

// CreditsHandler handles credit purchase endpoints
type CreditsHandler struct {
	purchaseUsecase purchaseService
}

// NewCreditsHandler creates a new credits handler
func NewCreditsHandler(purchaseUsecase *usecases.PurchaseUsecase) *CreditsHandler {
	return &CreditsHandler{purchaseUsecase: purchaseUsecase}
}

// GetDestination returns the platform receiving address
// GET /api/v1/payments/destination
func (h *CreditsHandler) GetDestination(c *gin.Context) {
	address, err := h.purchaseUsecase.GetDestination()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"address": address})
}

// PurchaseCredits buys credits from the user's custodial wallet
// POST /api/v1/credits/purchase
func (h *CreditsHandler) PurchaseCredits(c *gin.Context) {
	var input entities.PurchaseCreditsInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	resp, err := h.purchaseUsecase.PurchaseCredits(c.Request.Context(), userID, &input)
	if err != nil {
		middleware.CountPurchase("custodial", "failed")
		response.Error(c, err)
		return
	}

	middleware.CountPurchase("custodial", "submitted")
	response.Success(c, http.StatusOK, resp)
}

// RecordExternalPayment persists a transfer dispatched by a browser wallet
// POST /api/v1/credits/record
func (h *CreditsHandler) RecordExternalPayment(c *gin.Context) {
	var input entities.RecordExternalPaymentInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	resp, err := h.purchaseUsecase.RecordExternalPayment(c.Request.Context(), userID, &input)
	if err != nil {
		middleware.CountPurchase("external", "failed")
		response.Error(c, err)
		return
	}

	middleware.CountPurchase("external", "submitted")
	response.Success(c, http.StatusOK, resp)
}

// ListTransactions lists the user's credit transactions
// GET /api/v1/credits/transactions
func (h *CreditsHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, total, err := h.purchaseUsecase.GetTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": txs,
		"total":        total,
	})
}
