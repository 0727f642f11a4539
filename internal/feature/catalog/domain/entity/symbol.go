// Package entity defines the domain models for the market catalog feature.
package entity

// SymbolInfo describes a tradable instrument known to the service:
// an exchange ticker or index code plus its classification.
type SymbolInfo struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Market   string `json:"market" yaml:"market"`
	Category string `json:"category" yaml:"category"`
	Currency string `json:"currency" yaml:"currency"`
}
