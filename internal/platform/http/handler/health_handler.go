// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "GSMT API"
	serviceVersion = "7.0.0"
	serviceDesc    = "Global Stock Market Tracker"
)

// HealthHandler serves the liveness and service-info endpoints.
type HealthHandler struct {
	symbolCount int
}

// NewHealthHandler creates a HealthHandler reporting the given supported
// symbol count.
func NewHealthHandler(symbolCount int) *HealthHandler {
	return &HealthHandler{symbolCount: symbolCount}
}

// Health handles /health. Responds to GET/HEAD/OPTIONS and prevents caching.
func (h *HealthHandler) Health(c *gin.Context) {
	// Explicitly prevent caching of liveness responses.
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"service":           serviceName,
			"version":           serviceVersion,
			"timestamp":         time.Now().UTC().Format(time.RFC3339),
			"supported_symbols": h.symbolCount,
			"features": []string{
				"Demo data generation",
				"Percentage-based analysis",
				"Global market coverage",
			},
		})
	}
}

// Root handles GET /: service identity and the endpoint map.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        serviceName,
		"version":     serviceVersion,
		"description": serviceDesc,
		"status":      "healthy",
		"endpoints": gin.H{
			"health":     "/health",
			"symbols":    "/symbols",
			"search":     "/search/{query}",
			"global_24h": "/global-24h",
			"analyze":    "/analyze",
		},
	})
}
