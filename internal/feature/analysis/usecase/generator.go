// Package usecase implements the synthetic data generation and request
// orchestration logic for the analysis feature.
package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"gsmt_backend/internal/feature/analysis/domain/entity"
)

// SessionCalendar answers whether a market trades at a given UTC hour.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (catalog).
type SessionCalendar interface {
	IsOpen(market string, utcHour int) bool
}

const (
	// maxSeriesPoints caps the bounded-period series length; longer spans
	// get coarser sampling rather than more points.
	maxSeriesPoints = 100

	// flowPoints is the fixed 24-hour grid: one point every 30 minutes.
	flowPoints       = 48
	flowStepInterval = 30 * time.Minute

	walkVolatility      = 0.02  // per-step close volatility of the bounded walk
	walkRangeVolatility = 0.01  // high/low perturbation of the bounded walk
	walkOpenVolatility  = 0.005 // open perturbation of the bounded walk

	openVolatility       = 0.015 // 24h flow close volatility while the market trades
	closedVolatility     = 0.002 // 24h flow close volatility outside the session
	flowRangeVolatility  = 0.005 // high/low perturbation of the 24h flow
	flowOpenVolatility   = 0.002 // open perturbation of the 24h flow
	closedVolumeDampener = 0.1
)

// PathGenerator synthesizes random-walk OHLCV series. The generator owns
// its random source so tests can seed it; rand.Rand is not safe for
// concurrent use, so draws are serialized by a mutex.
type PathGenerator struct {
	calendar SessionCalendar
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPathGenerator creates a generator seeded from the wall clock.
func NewPathGenerator(calendar SessionCalendar) *PathGenerator {
	return NewSeededPathGenerator(calendar, time.Now().UnixNano())
}

// NewSeededPathGenerator creates a generator with a fixed seed, for
// deterministic output in tests.
func NewSeededPathGenerator(calendar SessionCalendar, seed int64) *PathGenerator {
	return &PathGenerator{
		calendar: calendar,
		now:      func() time.Time { return time.Now().UTC() },
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Series generates a bounded-period random walk for one symbol spanning
// the given number of days, ending now. The walk reflects off a floor at
// half the base price, so it cannot collapse toward zero.
func (g *PathGenerator) Series(symbol string, days int) ([]entity.DataPoint, error) {
	if days < 1 {
		return nil, fmt.Errorf("series for %s: day count must be positive, got %d", symbol, days)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	numPoints := days * 2
	if numPoints > maxSeriesPoints {
		numPoints = maxSeriesPoints
	}

	base := g.basePrice(symbol)
	current := base
	span := time.Duration(days) * 24 * time.Hour
	start := g.now().Add(-span)

	points := make([]entity.DataPoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		change := g.rng.NormFloat64() * walkVolatility
		current = nextPrice(current, base, change)

		ts := start.Add(time.Duration(float64(span) * float64(i) / float64(numPoints)))
		volume := int64(g.uniform(100_000, 10_000_000))
		points = append(points, g.bar(ts, current, base, walkRangeVolatility, walkOpenVolatility, volume))
	}
	return points, nil
}

// GlobalDaySeries generates the 24-hour global flow series for one symbol:
// 48 half-hour points covering the UTC calendar day of the given instant,
// with volatility and volume damped outside the market's session window.
// Unlike Series, the flow walk has no price floor.
func (g *PathGenerator) GlobalDaySeries(symbol, market string, day time.Time) []entity.DataPoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	day = day.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	base := g.basePrice(symbol)
	current := base
	baseVolume := 500_000.0
	if strings.HasPrefix(symbol, "^") {
		baseVolume = 1_000_000.0
	}

	points := make([]entity.DataPoint, 0, flowPoints)
	for i := 0; i < flowPoints; i++ {
		ts := midnight.Add(time.Duration(i) * flowStepInterval)

		volatility := closedVolatility
		volumeMultiplier := closedVolumeDampener
		if g.calendar.IsOpen(market, ts.Hour()) {
			volatility = openVolatility
			volumeMultiplier = 1.0
		}

		current *= 1 + g.rng.NormFloat64()*volatility
		volume := int64(baseVolume * volumeMultiplier * g.uniform(0.5, 2.0))
		points = append(points, g.bar(ts, current, base, flowRangeVolatility, flowOpenVolatility, volume))
	}
	return points
}

// bar derives one OHLCV sample around the updated close price. High, low
// and open are independent perturbations; high/low are then widened to
// cover open and close so the OHLC ordering invariant always holds.
// Callers must hold g.mu.
func (g *PathGenerator) bar(ts time.Time, price, base, rangeVol, openVol float64, volume int64) entity.DataPoint {
	high := price * (1 + math.Abs(g.rng.NormFloat64()*rangeVol))
	low := price * (1 - math.Abs(g.rng.NormFloat64()*rangeVol))
	open := price * (1 + g.rng.NormFloat64()*openVol)
	high = math.Max(high, math.Max(open, price))
	low = math.Min(low, math.Min(open, price))

	return entity.DataPoint{
		Timestamp:        ts.Format(entity.TimestampLayout),
		TimestampMS:      ts.UnixMilli(),
		Open:             round2(open),
		High:             round2(high),
		Low:              round2(low),
		Close:            round2(price),
		Volume:           volume,
		PercentageChange: round2((price - base) / base * 100),
	}
}

// basePrice draws the synthetic starting price for a symbol class:
// index codes trade in the thousands, ASX tickers lower than US ones.
// Callers must hold g.mu.
func (g *PathGenerator) basePrice(symbol string) float64 {
	switch {
	case strings.HasPrefix(symbol, "^"):
		return g.uniform(3000, 40000)
	case strings.Contains(symbol, ".AX"):
		return g.uniform(10, 300)
	default:
		return g.uniform(50, 500)
	}
}

// uniform draws from U[min, max). Callers must hold g.mu.
func (g *PathGenerator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// nextPrice applies one multiplicative step, reflecting off the floor at
// half the base price.
func nextPrice(current, base, change float64) float64 {
	return math.Max(current*(1+change), base*0.5)
}

// round2 rounds to two decimal places, matching the wire format.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
