package entity

// Period is one entry of the closed lookback-window enumeration.
type Period struct {
	Key         string // enumeration tag, e.g. "24h", "1M"
	Days        int    // calendar days the series spans, always >= 1
	Description string // human label, e.g. "1 Month"
}

// Period24h is the key of the one-day period, which routes multi-market
// requests to the 24-hour global flow generator.
const Period24h = "24h"
