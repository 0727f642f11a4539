// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gsmt_backend/internal/feature/analysis/domain"
	"gsmt_backend/internal/feature/analysis/domain/entity"
	"gsmt_backend/internal/feature/analysis/transport/http/dto"
	catalogdomain "gsmt_backend/internal/feature/catalog/domain"
	catalogentity "gsmt_backend/internal/feature/catalog/domain/entity"
)

// AnalysisUsecase is the analysis operations interface used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AnalysisUsecase interface {
	Analyze(ctx context.Context, symbols []string, period, chartType string) (*entity.Analysis, error)
	GlobalFlow(ctx context.Context) (*entity.Analysis, error)
	TradingSessions() []entity.TradingSession
}

// AnalysisHandler serves the analysis endpoints.
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler creates a new AnalysisHandler with the given usecase.
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze handles POST /analyze. Malformed bodies and out-of-enumeration
// period or chart type values are rejected at the binding boundary;
// unknown symbols come back as a 400 naming the offenders.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Period == "" {
		req.Period = catalogentity.Period24h
	}
	if req.ChartType == "" {
		req.ChartType = "percentage"
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), req.Symbols, req.Period, req.ChartType)
	if err != nil {
		var invalid *domain.InvalidSymbolError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": fmt.Sprintf("Unsupported symbols: %s", strings.Join(invalid.Symbols, ", ")),
			})
		case errors.Is(err, catalogdomain.ErrUnknownPeriod):
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("Unknown period: %s", req.Period)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromAnalysis(analysis))
}

// GlobalFlow handles GET /global-24h: the 24-hour session hand-off across
// the curated Asia/Europe/US index set.
func (h *AnalysisHandler) GlobalFlow(c *gin.Context) {
	analysis, err := h.uc.GlobalFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.GlobalFlowResponse{
		AnalysisResponse: dto.FromAnalysis(analysis),
		MarketSessions:   h.uc.TradingSessions(),
		Description:      "24-hour global market flow tracking across time zones",
	})
}
