// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

var (
	// ErrSymbolNotFound is returned when a symbol is not present in the catalog.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUnknownPeriod is returned when a period key is outside the supported enumeration.
	ErrUnknownPeriod = errors.New("unknown period")
)
