// Package router assembles the HTTP route table and shared middleware.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "gsmt_backend/internal/feature/analysis/transport/handler"
	cataloghandler "gsmt_backend/internal/feature/catalog/transport/handler"
	platformhandler "gsmt_backend/internal/platform/http/handler"
)

// NewRouter wires all handlers into a gin engine with CORS and request-ID
// middleware applied.
func NewRouter(health *platformhandler.HealthHandler, symbols *cataloghandler.SymbolHandler,
	analysis *analysishandler.AnalysisHandler) *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())

	// Browser dashboards are served from other origins.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsCfg))

	// Service info and liveness
	r.GET("/", health.Root)
	r.GET("/health", health.Health)
	r.HEAD("/health", health.Health)

	// Catalog
	r.GET("/symbols", symbols.List)
	r.GET("/search/:query", symbols.Search)

	// Analysis
	r.GET("/global-24h", analysis.GlobalFlow)
	r.POST("/analyze", analysis.Analyze)

	return r
}
