// Package domain defines domain-level errors for the analysis feature.
package domain

import (
	"fmt"
	"strings"
)

// InvalidSymbolError reports the requested symbols that are not in the
// catalog. Upper layers surface it as a client error naming the offenders.
type InvalidSymbolError struct {
	Symbols []string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("unsupported symbols: %s", strings.Join(e.Symbols, ", "))
}
