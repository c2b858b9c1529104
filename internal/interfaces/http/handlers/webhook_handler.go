package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"usdc-credits.backend/internal/usecases"
)

// WebhookHandler handles webhook endpoints
type WebhookHandler struct {
	webhookUsecase *usecases.WebhookUsecase
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase *usecases.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase}
}

// HandleProviderWebhook handles transaction notifications from the custodial
// wallet provider
// POST /api/v1/webhooks/provider
func (h *WebhookHandler) HandleProviderWebhook(c *gin.Context) {
	var input usecases.ProviderNotification

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.webhookUsecase.ProcessProviderNotification(c.Request.Context(), &input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
