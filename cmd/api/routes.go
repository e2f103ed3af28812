package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dhwani-platform/internal/httpapi"
	"dhwani-platform/pkg/utils"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, accountMW gin.HandlerFunc, db *sql.DB) {
	// Explicit 405 so a stray GET on the ingestion endpoint is rejected as
	// a method error, not a 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// public
	r.GET("/healthz", func(c *gin.Context) {
		if err := utils.HealthCheck(c.Request.Context(), db, 2*time.Second); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// protected API group
	v1 := r.Group("/api/v1")
	v1.Use(accountMW)
	{
		// Runtime lookups accept GET and POST interchangeably.
		v1.GET("/caller-details", h.CallerDetails)
		v1.POST("/caller-details", h.CallerDetails)
		v1.GET("/outbound-call-details", h.OutboundCallDetails)
		v1.POST("/outbound-call-details", h.OutboundCallDetails)

		// Ingestion is POST only.
		v1.POST("/receive-call-data", h.ReceiveCallData)

		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("/:campaign_id/activate", h.ActivateCampaign)
			campaigns.GET("/:campaign_id/calls-summary", h.CampaignSummary)
			campaigns.GET("/:campaign_id/extracted-data", h.CampaignExtractedData)
		}
	}
}
