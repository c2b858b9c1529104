package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"usdc-credits.backend/internal/interfaces/http/handlers"
	"usdc-credits.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	walletHandler  *handlers.WalletHandler
	creditsHandler *handlers.CreditsHandler
	webhookHandler *handlers.WebhookHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Payment routes (protected)
		payments := v1.Group("/payments")
		payments.Use(d.authMiddleware)
		{
			payments.GET("/destination", d.creditsHandler.GetDestination)
		}

		// Wallet routes (protected)
		wallets := v1.Group("/wallets")
		wallets.Use(d.authMiddleware)
		{
			wallets.GET("", d.walletHandler.ListWallets)
			wallets.POST("/connect", d.walletHandler.ConnectWallet)
			wallets.GET("/:id/balance", d.walletHandler.GetWalletBalance)
		}

		// Credit routes (protected)
		credits := v1.Group("/credits")
		credits.Use(d.authMiddleware)
		{
			credits.POST("/purchase", middleware.IdempotencyMiddleware(), d.creditsHandler.PurchaseCredits)
			credits.POST("/record", middleware.IdempotencyMiddleware(), d.creditsHandler.RecordExternalPayment)
			credits.GET("/transactions", d.creditsHandler.ListTransactions)
		}

		// Admin routes (protected, ADMIN role only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.GetStats)
		}

		// Webhook routes (provider-facing, unauthenticated)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/provider", d.webhookHandler.HandleProviderWebhook)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "usdc-credits-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
