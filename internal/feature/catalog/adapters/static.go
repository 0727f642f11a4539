package adapters

import "gsmt_backend/internal/feature/catalog/domain/entity"

// defaultSymbols is the built-in instrument table, grouped by region.
var defaultSymbols = []entity.SymbolInfo{
	// US indices (14:30-21:00 UTC)
	{Symbol: "^GSPC", Name: "S&P 500", Market: "US", Category: "Index", Currency: "USD"},
	{Symbol: "^IXIC", Name: "NASDAQ Composite", Market: "US", Category: "Index", Currency: "USD"},
	{Symbol: "^DJI", Name: "Dow Jones Industrial Average", Market: "US", Category: "Index", Currency: "USD"},

	// US tech
	{Symbol: "AAPL", Name: "Apple Inc.", Market: "US", Category: "Technology", Currency: "USD"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Market: "US", Category: "Technology", Currency: "USD"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Market: "US", Category: "Technology", Currency: "USD"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Market: "US", Category: "Technology", Currency: "USD"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Market: "US", Category: "Automotive", Currency: "USD"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Market: "US", Category: "Technology", Currency: "USD"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Market: "US", Category: "Technology", Currency: "USD"},

	// US finance
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Market: "US", Category: "Finance", Currency: "USD"},
	{Symbol: "V", Name: "Visa Inc.", Market: "US", Category: "Finance", Currency: "USD"},

	// Australia
	{Symbol: "^AXJO", Name: "ASX 200", Market: "Australia", Category: "Index", Currency: "AUD"},
	{Symbol: "CBA.AX", Name: "Commonwealth Bank of Australia", Market: "Australia", Category: "Finance", Currency: "AUD"},
	{Symbol: "BHP.AX", Name: "BHP Group Limited", Market: "Australia", Category: "Mining", Currency: "AUD"},
	{Symbol: "CSL.AX", Name: "CSL Limited", Market: "Australia", Category: "Healthcare", Currency: "AUD"},

	// Asia (00:00-06:00 / 01:00-08:00 UTC)
	{Symbol: "^N225", Name: "Nikkei 225", Market: "Japan", Category: "Index", Currency: "JPY"},
	{Symbol: "^HSI", Name: "Hang Seng Index", Market: "Hong Kong", Category: "Index", Currency: "HKD"},

	// Europe (07:00-16:00 UTC)
	{Symbol: "^FTSE", Name: "FTSE 100", Market: "UK", Category: "Index", Currency: "GBP"},
	{Symbol: "^GDAXI", Name: "DAX Performance Index", Market: "Germany", Category: "Index", Currency: "EUR"},
	{Symbol: "^FCHI", Name: "CAC 40", Market: "France", Category: "Index", Currency: "EUR"},
}

// defaultSessions maps markets to their trading windows in UTC hours.
// Markets without an entry (Australia) fall back to the default window.
var defaultSessions = map[string]entity.MarketSession{
	"Japan":     {Open: 0, Close: 6},
	"Hong Kong": {Open: 1, Close: 8},
	"UK":        {Open: 8, Close: 16},
	"Germany":   {Open: 7, Close: 15},
	"France":    {Open: 7, Close: 15},
	"US":        {Open: 14, Close: 21},
}

// defaultPeriods is the closed lookback-window enumeration.
var defaultPeriods = []entity.Period{
	{Key: "24h", Days: 1, Description: "24 Hours"},
	{Key: "3d", Days: 3, Description: "3 Days"},
	{Key: "1w", Days: 7, Description: "1 Week"},
	{Key: "2w", Days: 14, Description: "2 Weeks"},
	{Key: "1M", Days: 30, Description: "1 Month"},
	{Key: "3M", Days: 90, Description: "3 Months"},
	{Key: "6M", Days: 180, Description: "6 Months"},
	{Key: "1Y", Days: 365, Description: "1 Year"},
	{Key: "2Y", Days: 730, Description: "2 Years"},
}

// chartTypes is the closed chart type enumeration.
var chartTypes = []string{"percentage", "price", "candlestick"}
