package collector

import (
	"log"
	"math"
	"sort"
	"time"

	"MCXTracker/internal/metrics"
	"MCXTracker/internal/model"
)

// SpotFallbacks maps a futures ticker to its spot-equivalent symbol, used
// when the primary symbol yields nothing. At most one hop is taken.
var SpotFallbacks = map[string]string{
	"GC=F":  "XAUUSD=X",
	"SI=F":  "XAGUSD=X",
	"INR=X": "USDINR=X",
}

// Collector downloads the asset and currency series for a request and
// reconciles their calendars into a single aligned table.
type Collector struct {
	Fetcher   Fetcher
	Fallbacks map[string]string
}

// NewCollector creates a Collector with the default fallback map.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, Fallbacks: SpotFallbacks}
}

// FetchAligned retrieves both series and aligns them. It never returns an
// error: any provider failure, after the single fallback hop, yields an
// explicit empty table that callers must check before use.
func (c *Collector) FetchAligned(assetTicker, currencyTicker string, period model.Period, interval model.Interval) model.AlignedTable {
	symbols := []string{assetTicker, currencyTicker}
	asset, currency, ok := c.fetchPair(symbols, period, interval)
	if !ok {
		retry := c.fallbackSymbols(symbols)
		if retry == nil {
			return nil
		}
		log.Printf("[WARN] primary symbols %v empty, retrying with %v", symbols, retry)
		asset, currency, ok = c.fetchPair(retry, period, interval)
		if !ok {
			return nil
		}
	}
	return Align(asset, currency)
}

func (c *Collector) fetchPair(symbols []string, period model.Period, interval model.Interval) (asset, currency model.QuoteSeries, ok bool) {
	start := time.Now()
	series, err := c.Fetcher.FetchSeriesPair(symbols, period, interval)
	metrics.FetchLatency.WithLabelValues(c.Fetcher.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Printf("[WARN] fetch %v (%s, %s): %v", symbols, period, interval, err)
		return model.QuoteSeries{}, model.QuoteSeries{}, false
	}
	if len(series) != 2 || series[0].Empty() || series[1].Empty() {
		return model.QuoteSeries{}, model.QuoteSeries{}, false
	}
	return series[0], series[1], true
}

// fallbackSymbols substitutes known alternates; nil when no symbol has one.
func (c *Collector) fallbackSymbols(symbols []string) []string {
	out := make([]string, len(symbols))
	changed := false
	for i, s := range symbols {
		if alt, found := c.Fallbacks[s]; found {
			out[i] = alt
			changed = true
		} else {
			out[i] = s
		}
	}
	if !changed {
		return nil
	}
	return out
}

// Align joins the two series on their timestamp union. The asset and
// currency trade on different native calendars; values missing on a given
// date are forward-filled from the most recent known value, and rows still
// incomplete after the fill are dropped. Every returned row has both
// columns populated.
func Align(asset, currency model.QuoteSeries) model.AlignedTable {
	type cell struct {
		asset, rate       float64
		hasAsset, hasRate bool
	}
	merged := make(map[time.Time]*cell, len(asset.Points))
	at := func(t time.Time) *cell {
		c, found := merged[t]
		if !found {
			c = &cell{}
			merged[t] = c
		}
		return c
	}
	for _, p := range asset.Points {
		c := at(p.Time)
		c.asset, c.hasAsset = p.Close, true
	}
	for _, p := range currency.Points {
		c := at(p.Time)
		c.rate, c.hasRate = p.Close, true
	}

	times := make([]time.Time, 0, len(merged))
	for t := range merged {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	table := make(model.AlignedTable, 0, len(times))
	lastAsset, lastRate := math.NaN(), math.NaN()
	for _, t := range times {
		c := merged[t]
		if c.hasAsset {
			lastAsset = c.asset
		}
		if c.hasRate {
			lastRate = c.rate
		}
		if math.IsNaN(lastAsset) || math.IsNaN(lastRate) {
			continue
		}
		table = append(table, model.Row{Time: t, AssetPrice: lastAsset, CurrencyRate: lastRate})
	}
	return table
}
