package collector

import (
	"fmt"
	"sort"
	"time"

	"MCXTracker/internal/model"
)

// sparkResult is one instrument's slot in a Yahoo spark payload. The
// provider is not consistent: depending on the symbol combination the
// Symbol field may be absent, leaving only column order to identify the
// instrument.
type sparkResult struct {
	Symbol   string          `json:"symbol"`
	Response []chartResponse `json:"response"`
}

type chartResponse struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []interface{} `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// normalizeSeries maps a multi-symbol provider response onto the requested
// symbols. Lookup is by symbol name first; when a requested symbol is
// absent from the payload the slot at the same position is used instead.
// All timestamps are stripped to naive UTC dates so series from providers
// with different native calendars stay comparable.
func normalizeSeries(results []sparkResult, symbols []string) ([]model.QuoteSeries, error) {
	series := make([]model.QuoteSeries, 0, len(symbols))
	for i, sym := range symbols {
		var res *sparkResult
		for j := range results {
			if results[j].Symbol == sym {
				res = &results[j]
				break
			}
		}
		if res == nil {
			// Positional fallback for schema variants without symbol keys.
			if i >= len(results) {
				return nil, fmt.Errorf("symbol %q: not in response and no column at position %d", sym, i)
			}
			res = &results[i]
		}
		s, err := extractSeries(sym, res)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func extractSeries(symbol string, res *sparkResult) (model.QuoteSeries, error) {
	if len(res.Response) == 0 {
		return model.QuoteSeries{Symbol: symbol}, nil
	}
	chart := res.Response[0]
	if len(chart.Indicators.Quote) == 0 {
		return model.QuoteSeries{Symbol: symbol}, nil
	}
	closes := chart.Indicators.Quote[0].Close
	points := make([]model.QuotePoint, 0, len(chart.Timestamp))
	for i, ts := range chart.Timestamp {
		if i >= len(closes) {
			break
		}
		c := toFloat(closes[i])
		if c == 0 {
			continue // null bars: holidays, halted sessions
		}
		points = append(points, model.QuotePoint{Time: naiveDate(ts), Close: c})
	}
	points = dedupeAscending(points)
	return model.QuoteSeries{Symbol: symbol, Points: points}, nil
}

// naiveDate converts a provider epoch into a timezone-free calendar date.
func naiveDate(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dedupeAscending sorts points by time and keeps the last observation for
// each duplicate timestamp.
func dedupeAscending(points []model.QuotePoint) []model.QuotePoint {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	out := points[:0]
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1].Time.Equal(p.Time) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}
