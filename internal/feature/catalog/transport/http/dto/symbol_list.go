// Package dto defines data transfer objects for the catalog HTTP API.
package dto

import "gsmt_backend/internal/feature/catalog/domain/entity"

// SymbolListResponse is the payload of GET /symbols: the full catalog
// grouped by "{market} {category}" plus the supported enumerations.
type SymbolListResponse struct {
	TotalSymbols     int                            `json:"total_symbols"`
	Categories       map[string][]entity.SymbolInfo `json:"categories"`
	SupportedPeriods []string                       `json:"supported_periods"`
	ChartTypes       []string                       `json:"chart_types"`
}

// SearchResponse is the payload of GET /search/:query. TotalFound counts
// every match; Results is capped at the requested limit.
type SearchResponse struct {
	Query      string              `json:"query"`
	Results    []entity.SymbolInfo `json:"results"`
	TotalFound int                 `json:"total_found"`
}

// SearchQuery binds the query-string parameters of GET /search/:query.
type SearchQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}
