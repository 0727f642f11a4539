// Package dto defines data transfer objects for the analysis HTTP API.
package dto

import (
	"time"

	"gsmt_backend/internal/feature/analysis/domain/entity"
	catalogentity "gsmt_backend/internal/feature/catalog/domain/entity"
)

// AnalysisRequest is the body of POST /analyze. Period and chart type are
// closed enumerations validated at the binding boundary; omitted values
// default to a 24-hour percentage analysis.
type AnalysisRequest struct {
	Symbols   []string `json:"symbols" binding:"required,min=1,max=10"`
	Period    string   `json:"period" binding:"omitempty,oneof=24h 3d 1w 2w 1M 3M 6M 1Y 2Y"`
	ChartType string   `json:"chart_type" binding:"omitempty,oneof=percentage price candlestick"`
}

// AnalysisResponse is the envelope returned by POST /analyze: per-symbol
// series and metadata plus the summary counters.
type AnalysisResponse struct {
	Success           bool                                `json:"success"`
	Data              map[string][]entity.DataPoint       `json:"data"`
	Metadata          map[string]catalogentity.SymbolInfo `json:"metadata"`
	Period            string                              `json:"period"`
	ChartType         string                              `json:"chart_type"`
	Timestamp         string                              `json:"timestamp"`
	TotalSymbols      int                                 `json:"total_symbols"`
	SuccessfulSymbols int                                 `json:"successful_symbols"`
}

// GlobalFlowResponse extends the analysis envelope with the named trading
// sessions for the 24-hour global flow endpoint.
type GlobalFlowResponse struct {
	AnalysisResponse
	MarketSessions []entity.TradingSession `json:"market_sessions"`
	Description    string                  `json:"description"`
}

// FromAnalysis converts the domain envelope into its wire representation.
func FromAnalysis(a *entity.Analysis) AnalysisResponse {
	return AnalysisResponse{
		Success:           true,
		Data:              a.Data,
		Metadata:          a.Metadata,
		Period:            a.Period,
		ChartType:         a.ChartType,
		Timestamp:         a.GeneratedAt.Format(time.RFC3339),
		TotalSymbols:      a.TotalSymbols,
		SuccessfulSymbols: a.SuccessfulSymbols,
	}
}
