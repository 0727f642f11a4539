package adapters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gsmt_backend/internal/feature/catalog/domain/entity"
)

// catalogFile is the on-disk shape of a catalog override. Both sections are
// optional; an omitted section keeps the built-in table. Periods and chart
// types are closed enumerations and cannot be overridden.
type catalogFile struct {
	Symbols  []entity.SymbolInfo             `yaml:"symbols"`
	Sessions map[string]entity.MarketSession `yaml:"sessions"`
}

// LoadCatalog builds a catalog from a yaml file, falling back to the
// built-in tables for any section the file omits.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	symbols := f.Symbols
	if len(symbols) == 0 {
		symbols = defaultSymbols
	}
	sessions := f.Sessions
	if sessions == nil {
		sessions = defaultSessions
	}
	for market, s := range sessions {
		if s.Open < 0 || s.Close > 24 || s.Open >= s.Close {
			return nil, fmt.Errorf("catalog: invalid session window for %q: open=%d close=%d", market, s.Open, s.Close)
		}
	}

	return build(symbols, sessions)
}
