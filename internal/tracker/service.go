package tracker

import (
	"errors"
	"fmt"
	"log"
	"math"

	"MCXTracker/internal/cache"
	"MCXTracker/internal/calculator"
	"MCXTracker/internal/collector"
	"MCXTracker/internal/contract"
	"MCXTracker/internal/margin"
	"MCXTracker/internal/metrics"
	"MCXTracker/internal/model"
	"MCXTracker/internal/strategy"
)

// Duty is bounded to a sane calibration range, in percent over parity.
const (
	MinDutyPercent = 0
	MaxDutyPercent = 15
)

var (
	// ErrDataUnavailable marks an empty provider result after the fallback
	// hop. Distinct from a populated table with undefined indicators.
	ErrDataUnavailable = errors.New("market data unavailable")
	// ErrDutyOutOfRange marks a rejected calibration value. Fatal to the
	// single request only; the cache is untouched.
	ErrDutyOutOfRange = errors.New("duty percent out of range")
)

// Request selects what to analyze. DutyPercent is the import duty plus
// market premium over theoretical parity; Refresh bypasses the cache.
type Request struct {
	Contract    string
	Period      model.Period
	Interval    model.Interval
	DutyPercent float64
	Refresh     bool
}

// Analysis is everything the presentation layer needs for one render:
// tabular and scalar data only, no rendering concerns.
type Analysis struct {
	Contract    model.ContractSpec
	Period      model.Period
	Interval    model.Interval
	DutyPercent float64
	Table       model.IndicatorTable
	Latest      model.IndicatorRow
	Change      float64 // derived price delta vs the previous row
	Trend       string  // BULLISH / BEARISH vs EMA50, empty when undefined
	MACDStatus  string  // POS / NEG
	Signal      model.Signal
	Margin      model.MarginEstimate
}

// Service is the synchronous core pipeline: validate, fetch-or-cache,
// convert, compute, classify, estimate. No state crosses requests except
// the cache.
type Service struct {
	Collector      *collector.Collector
	Registry       *contract.Registry
	Cache          *cache.Cache
	CurrencyTicker string
}

// NewService wires the pipeline around a collector, the contract table and
// an aligned-table cache.
func NewService(col *collector.Collector, reg *contract.Registry, c *cache.Cache, currencyTicker string) *Service {
	return &Service{
		Collector:      col,
		Registry:       reg,
		Cache:          c,
		CurrencyTicker: currencyTicker,
	}
}

// Analyze runs the full pipeline for one request.
func (s *Service) Analyze(req Request) (*Analysis, error) {
	spec, err := s.Registry.Lookup(req.Contract)
	if err != nil {
		return nil, err
	}
	// NaN compares false against both bounds; reject non-finite values
	// explicitly or a NaN tax factor would poison every derived price.
	if math.IsNaN(req.DutyPercent) || math.IsInf(req.DutyPercent, 0) ||
		req.DutyPercent < MinDutyPercent || req.DutyPercent > MaxDutyPercent {
		return nil, fmt.Errorf("%w: %.2f (want %d..%d)", ErrDutyOutOfRange, req.DutyPercent, MinDutyPercent, MaxDutyPercent)
	}

	aligned, err := s.alignedTable(spec.Ticker, req.Period, req.Interval, req.Refresh)
	if err != nil {
		return nil, err
	}

	taxFactor := 1.0 + req.DutyPercent/100.0
	priced := calculator.DerivePrices(aligned, spec.UnitMultiplier, taxFactor)
	table := calculator.ComputeIndicators(priced)
	latest, _ := table.Latest()

	a := &Analysis{
		Contract:    spec,
		Period:      req.Period,
		Interval:    req.Interval,
		DutyPercent: req.DutyPercent,
		Table:       table,
		Latest:      latest,
		Signal:      strategy.Classify(latest),
	}
	if len(table) >= 2 {
		a.Change = latest.DerivedPrice - table[len(table)-2].DerivedPrice
	}
	if model.IsDefined(latest.EMA50) {
		if latest.DerivedPrice > latest.EMA50 {
			a.Trend = "BULLISH"
		} else {
			a.Trend = "BEARISH"
		}
	}
	if latest.MACD > latest.MACDSignal {
		a.MACDStatus = "POS"
	} else {
		a.MACDStatus = "NEG"
	}

	est, err := margin.Estimate(latest.DerivedPrice, spec)
	if err != nil {
		return nil, fmt.Errorf("margin estimate: %w", err)
	}
	a.Margin = est

	return a, nil
}

// alignedTable serves the cache-or-fetch step. An explicit refresh
// invalidates the tuple before looking it up.
func (s *Service) alignedTable(assetTicker string, period model.Period, interval model.Interval, refresh bool) (model.AlignedTable, error) {
	key := cache.Key(assetTicker, s.CurrencyTicker, period, interval)
	if refresh {
		s.Cache.Invalidate(key)
	}
	if table, hit := s.Cache.Get(key); hit {
		metrics.CacheHits.Inc()
		return table, nil
	}
	metrics.CacheMisses.Inc()

	table := s.Collector.FetchAligned(assetTicker, s.CurrencyTicker, period, interval)
	if table.Empty() {
		return nil, fmt.Errorf("%w: %s/%s period=%s interval=%s",
			ErrDataUnavailable, assetTicker, s.CurrencyTicker, period, interval)
	}
	s.Cache.Put(key, table)
	log.Printf("[INFO] fetched %d aligned rows for %s/%s (%s, %s)",
		len(table), assetTicker, s.CurrencyTicker, period, interval)
	return table, nil
}

// Classify exposes the latest-row classifier to the presentation boundary.
func (s *Service) Classify(row model.IndicatorRow) model.Signal {
	return strategy.Classify(row)
}

// EstimateMargin computes a margin estimate for a contract at a given
// price, independent of a full analysis run.
func (s *Service) EstimateMargin(latestPrice float64, contractName string) (model.MarginEstimate, error) {
	spec, err := s.Registry.Lookup(contractName)
	if err != nil {
		return model.MarginEstimate{}, err
	}
	return margin.Estimate(latestPrice, spec)
}

// InvalidateAll clears the cache; the user-triggered refresh path.
func (s *Service) InvalidateAll() {
	s.Cache.Clear()
	log.Println("[INFO] cache cleared")
}
