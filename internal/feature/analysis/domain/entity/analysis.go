package entity

import (
	"time"

	catalogentity "gsmt_backend/internal/feature/catalog/domain/entity"
)

// Analysis is the result envelope for a batch of symbols: per-symbol
// series, per-symbol metadata and the summary counters. Every key in Data
// also appears in Metadata, and SuccessfulSymbols <= TotalSymbols.
type Analysis struct {
	Data              map[string][]DataPoint
	Metadata          map[string]catalogentity.SymbolInfo
	Period            string
	ChartType         string
	GeneratedAt       time.Time
	TotalSymbols      int
	SuccessfulSymbols int
}

// TradingSession describes one of the named global trading sessions
// reported alongside the 24-hour flow, with its display color.
type TradingSession struct {
	Name    string   `json:"name"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Markets []string `json:"markets"`
	Color   string   `json:"color"`
}
