package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"usdc-credits.backend/internal/domain/entities"
	"usdc-credits.backend/internal/domain/repositories"
	"usdc-credits.backend/internal/interfaces/http/response"
)

// AdminHandler handles admin endpoints
type AdminHandler struct {
	txRepo repositories.CreditTransactionRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(txRepo repositories.CreditTransactionRepository) *AdminHandler {
	return &AdminHandler{txRepo: txRepo}
}

// GetStats returns purchase pipeline stats
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	counts, err := h.txRepo.CountByStatus(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	response.Success(c, http.StatusOK, gin.H{
		"totalTransactions": total,
		"pending":           counts[entities.TransactionStatusPending],
		"confirmed":         counts[entities.TransactionStatusConfirmed],
		"failed":            counts[entities.TransactionStatusFailed],
	})
}
