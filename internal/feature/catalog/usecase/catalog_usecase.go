// Package usecase implements the business logic for catalog operations.
package usecase

import (
	"strings"

	"gsmt_backend/internal/feature/catalog/domain"
	"gsmt_backend/internal/feature/catalog/domain/entity"
)

// CatalogRepository abstracts the static catalog tables.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogRepository interface {
	All() []entity.SymbolInfo
	Lookup(symbol string) (entity.SymbolInfo, bool)
	Count() int
	Period(key string) (entity.Period, bool)
	Periods() []entity.Period
	ChartTypes() []string
	IsOpen(market string, utcHour int) bool
}

// CatalogUsecase provides lookup, search and enumeration operations over
// the market catalog.
type CatalogUsecase struct {
	repo CatalogRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(r CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// Lookup returns the metadata for a symbol, or ErrSymbolNotFound.
func (u *CatalogUsecase) Lookup(symbol string) (entity.SymbolInfo, error) {
	info, ok := u.repo.Lookup(symbol)
	if !ok {
		return entity.SymbolInfo{}, domain.ErrSymbolNotFound
	}
	return info, nil
}

// Count returns the number of supported symbols.
func (u *CatalogUsecase) Count() int {
	return u.repo.Count()
}

// ListGrouped returns all symbols keyed by "{market} {category}",
// preserving catalog order within each group.
func (u *CatalogUsecase) ListGrouped() map[string][]entity.SymbolInfo {
	groups := make(map[string][]entity.SymbolInfo)
	for _, s := range u.repo.All() {
		key := s.Market + " " + s.Category
		groups[key] = append(groups[key], s)
	}
	return groups
}

// Search returns every symbol whose identifier, name, market or category
// contains the query case-insensitively, in catalog order. Callers cap the
// result; Search itself returns all matches so the total can be reported.
func (u *CatalogUsecase) Search(query string) []entity.SymbolInfo {
	q := strings.ToLower(query)
	var results []entity.SymbolInfo
	for _, s := range u.repo.All() {
		if strings.Contains(strings.ToLower(s.Symbol), q) ||
			strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Market), q) ||
			strings.Contains(strings.ToLower(s.Category), q) {
			results = append(results, s)
		}
	}
	return results
}

// Period resolves a period key, or returns ErrUnknownPeriod for keys
// outside the enumeration.
func (u *CatalogUsecase) Period(key string) (entity.Period, error) {
	p, ok := u.repo.Period(key)
	if !ok {
		return entity.Period{}, domain.ErrUnknownPeriod
	}
	return p, nil
}

// PeriodKeys returns the period enumeration keys in declaration order.
func (u *CatalogUsecase) PeriodKeys() []string {
	periods := u.repo.Periods()
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, p.Key)
	}
	return keys
}

// ChartTypes returns the supported chart type enumeration.
func (u *CatalogUsecase) ChartTypes() []string {
	return u.repo.ChartTypes()
}

// IsOpen reports whether the market trades at the given UTC hour.
func (u *CatalogUsecase) IsOpen(market string, utcHour int) bool {
	return u.repo.IsOpen(market, utcHour)
}
