package usecase

import (
	"context"
	"log"
	"time"

	"gsmt_backend/internal/feature/analysis/domain"
	"gsmt_backend/internal/feature/analysis/domain/entity"
	catalogentity "gsmt_backend/internal/feature/catalog/domain/entity"
)

// SymbolCatalog resolves symbols and periods against the market catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (catalog).
type SymbolCatalog interface {
	Lookup(symbol string) (catalogentity.SymbolInfo, error)
	Period(key string) (catalogentity.Period, error)
}

// SeriesGenerator produces synthetic OHLCV series.
type SeriesGenerator interface {
	Series(symbol string, days int) ([]entity.DataPoint, error)
	GlobalDaySeries(symbol, market string, day time.Time) []entity.DataPoint
}

// globalFlowSymbols is the curated index set tracked by the 24-hour flow
// endpoint, ordered by session: Asia, Europe, US.
var globalFlowSymbols = []string{"^N225", "^HSI", "^FTSE", "^GDAXI", "^GSPC", "^IXIC"}

// tradingSessions describes the three named global sessions with their
// display colors, reported alongside the 24-hour flow.
var tradingSessions = []entity.TradingSession{
	{Name: "Asian Session", Start: "00:00", End: "08:00", Markets: []string{"Japan", "Hong Kong"}, Color: "#f59e0b"},
	{Name: "European Session", Start: "07:00", End: "16:00", Markets: []string{"UK", "Germany", "France"}, Color: "#10b981"},
	{Name: "US Session", Start: "14:30", End: "21:00", Markets: []string{"US"}, Color: "#3b82f6"},
}

// AnalysisUsecase orchestrates symbol validation and series generation
// into a single analysis envelope.
type AnalysisUsecase struct {
	catalog SymbolCatalog
	gen     SeriesGenerator
	now     func() time.Time
}

// NewAnalysisUsecase creates a new AnalysisUsecase with the given catalog
// and generator.
func NewAnalysisUsecase(catalog SymbolCatalog, gen SeriesGenerator) *AnalysisUsecase {
	return &AnalysisUsecase{
		catalog: catalog,
		gen:     gen,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Analyze validates the requested symbols and generates a series per
// symbol for the resolved period. Unknown symbols fail the whole request
// with InvalidSymbolError; a 24h request spanning several markets is
// routed to the session-aware global flow generator instead of the
// bounded-period walk. Generation failures are logged and the affected
// symbol omitted, so SuccessfulSymbols may fall short of TotalSymbols.
func (u *AnalysisUsecase) Analyze(ctx context.Context, symbols []string, periodKey, chartType string) (*entity.Analysis, error) {
	period, err := u.catalog.Period(periodKey)
	if err != nil {
		return nil, err
	}

	infos := make(map[string]catalogentity.SymbolInfo, len(symbols))
	markets := make(map[string]struct{})
	var unknown []string
	for _, s := range symbols {
		info, err := u.catalog.Lookup(s)
		if err != nil {
			unknown = append(unknown, s)
			continue
		}
		infos[s] = info
		markets[info.Market] = struct{}{}
	}
	if len(unknown) > 0 {
		return nil, &domain.InvalidSymbolError{Symbols: unknown}
	}

	a := &entity.Analysis{
		Data:         make(map[string][]entity.DataPoint, len(symbols)),
		Metadata:     make(map[string]catalogentity.SymbolInfo, len(symbols)),
		Period:       periodKey,
		ChartType:    chartType,
		GeneratedAt:  u.now(),
		TotalSymbols: len(symbols),
	}

	if periodKey == catalogentity.Period24h && len(markets) > 1 {
		// Multiple markets over one day: track the global session hand-off.
		for _, s := range symbols {
			info := infos[s]
			a.Data[s] = u.gen.GlobalDaySeries(s, info.Market, a.GeneratedAt)
			a.Metadata[s] = info
		}
	} else {
		for _, s := range symbols {
			points, err := u.gen.Series(s, period.Days)
			if err != nil {
				log.Printf("[ERROR] Failed to generate data for %s: %v", s, err)
				continue
			}
			a.Data[s] = points
			a.Metadata[s] = infos[s]
		}
	}

	a.SuccessfulSymbols = len(a.Data)
	return a, nil
}

// GlobalFlow generates the 24-hour flow for the curated global index set.
// Curated symbols missing from the catalog (possible with a catalog file
// override) are skipped rather than failing the endpoint.
func (u *AnalysisUsecase) GlobalFlow(ctx context.Context) (*entity.Analysis, error) {
	a := &entity.Analysis{
		Data:         make(map[string][]entity.DataPoint, len(globalFlowSymbols)),
		Metadata:     make(map[string]catalogentity.SymbolInfo, len(globalFlowSymbols)),
		Period:       catalogentity.Period24h,
		ChartType:    "percentage",
		GeneratedAt:  u.now(),
		TotalSymbols: len(globalFlowSymbols),
	}

	for _, s := range globalFlowSymbols {
		info, err := u.catalog.Lookup(s)
		if err != nil {
			log.Printf("[WARN] Global flow symbol %s not in catalog; skipping", s)
			continue
		}
		a.Data[s] = u.gen.GlobalDaySeries(s, info.Market, a.GeneratedAt)
		a.Metadata[s] = info
	}

	a.SuccessfulSymbols = len(a.Data)
	return a, nil
}

// TradingSessions returns the static global session descriptors.
func (u *AnalysisUsecase) TradingSessions() []entity.TradingSession {
	return tradingSessions
}
