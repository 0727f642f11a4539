// Package handler provides the HTTP handlers for the catalog feature.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gsmt_backend/internal/feature/catalog/domain/entity"
	"gsmt_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase is the catalog operations interface used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListGrouped() map[string][]entity.SymbolInfo
	Search(query string) []entity.SymbolInfo
	Count() int
	PeriodKeys() []string
	ChartTypes() []string
}

// SymbolHandler serves the catalog endpoints.
type SymbolHandler struct {
	uc CatalogUsecase
}

// NewSymbolHandler creates a new SymbolHandler with the given usecase.
func NewSymbolHandler(uc CatalogUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List handles GET /symbols: the full catalog grouped by market and
// category, plus the supported period and chart type enumerations.
func (h *SymbolHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SymbolListResponse{
		TotalSymbols:     h.uc.Count(),
		Categories:       h.uc.ListGrouped(),
		SupportedPeriods: h.uc.PeriodKeys(),
		ChartTypes:       h.uc.ChartTypes(),
	})
}

// Search handles GET /search/:query?limit=N. The limit is bounded to
// [1,50] with a default of 10; out-of-range values are a client error.
func (h *SymbolHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "limit must be between 1 and 50"})
		return
	}

	query := c.Param("query")
	results := h.uc.Search(query)
	total := len(results)
	if total > q.Limit {
		results = results[:q.Limit]
	}
	if results == nil {
		results = []entity.SymbolInfo{}
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Query:      query,
		Results:    results,
		TotalFound: total,
	})
}
