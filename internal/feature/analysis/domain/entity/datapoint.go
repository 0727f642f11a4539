// Package entity defines the domain models for the analysis feature.
package entity

import "time"

// TimestampLayout is the wall-clock format used on the wire for data points.
const TimestampLayout = "2006-01-02 15:04:05"

// DataPoint is one synthetic OHLCV sample. Prices and the percentage
// change are rounded to two decimals; Low <= Open,Close <= High holds for
// every generated point.
type DataPoint struct {
	Timestamp        string  `json:"timestamp"`
	TimestampMS      int64   `json:"timestamp_ms"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	Volume           int64   `json:"volume"`
	PercentageChange float64 `json:"percentage_change"`
}

// Time returns the sample's instant reconstructed from the epoch field.
func (p DataPoint) Time() time.Time {
	return time.UnixMilli(p.TimestampMS).UTC()
}
