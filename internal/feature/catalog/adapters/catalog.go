// Package adapters provides the static market catalog backing the catalog usecase.
package adapters

import (
	"fmt"
	"strings"

	"gsmt_backend/internal/feature/catalog/domain/entity"
)

// defaultSession is the window applied to markets without an explicit entry.
var defaultSession = entity.MarketSession{Open: 0, Close: 23}

// Catalog is the immutable in-memory market catalog: symbols in insertion
// order, the period enumeration, chart types and market session windows.
// It is built once at startup and safe for unsynchronized concurrent reads.
type Catalog struct {
	symbols  []entity.SymbolInfo
	bySymbol map[string]entity.SymbolInfo
	periods  []entity.Period
	byPeriod map[string]entity.Period
	charts   []string
	sessions map[string]entity.MarketSession
}

// All returns every symbol in insertion order.
func (c *Catalog) All() []entity.SymbolInfo {
	return c.symbols
}

// Lookup returns the symbol's metadata, reporting whether it exists.
func (c *Catalog) Lookup(symbol string) (entity.SymbolInfo, bool) {
	info, ok := c.bySymbol[symbol]
	return info, ok
}

// Count returns the number of supported symbols.
func (c *Catalog) Count() int {
	return len(c.symbols)
}

// Period resolves a period key, reporting whether it is part of the enumeration.
func (c *Catalog) Period(key string) (entity.Period, bool) {
	p, ok := c.byPeriod[key]
	return p, ok
}

// Periods returns the period enumeration in declaration order.
func (c *Catalog) Periods() []entity.Period {
	return c.periods
}

// ChartTypes returns the supported chart type enumeration.
func (c *Catalog) ChartTypes() []string {
	return c.charts
}

// IsOpen reports whether the market trades at the given UTC hour,
// falling back to the default window for unregistered markets.
func (c *Catalog) IsOpen(market string, utcHour int) bool {
	session, ok := c.sessions[market]
	if !ok {
		session = defaultSession
	}
	return session.Contains(utcHour)
}

// build assembles a Catalog from a symbol table and session windows,
// validating the registry invariants.
func build(symbols []entity.SymbolInfo, sessions map[string]entity.MarketSession) (*Catalog, error) {
	c := &Catalog{
		symbols:  make([]entity.SymbolInfo, 0, len(symbols)),
		bySymbol: make(map[string]entity.SymbolInfo, len(symbols)),
		periods:  defaultPeriods,
		byPeriod: make(map[string]entity.Period, len(defaultPeriods)),
		charts:   chartTypes,
		sessions: sessions,
	}
	for _, s := range symbols {
		if strings.TrimSpace(s.Symbol) == "" {
			return nil, fmt.Errorf("catalog: symbol with empty identifier (name %q)", s.Name)
		}
		if _, dup := c.bySymbol[s.Symbol]; dup {
			return nil, fmt.Errorf("catalog: duplicate symbol %q", s.Symbol)
		}
		if s.Currency == "" {
			s.Currency = "USD"
		}
		c.symbols = append(c.symbols, s)
		c.bySymbol[s.Symbol] = s
	}
	for _, p := range defaultPeriods {
		c.byPeriod[p.Key] = p
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := build(defaultSymbols, defaultSessions)
	if err != nil {
		// The built-in tables are compile-time constants; a failure here is a bug.
		panic(err)
	}
	return c
}
