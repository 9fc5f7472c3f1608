package collector

import "MCXTracker/internal/model"

// Fetcher defines the interface for downloading close-price series from a
// quote provider. Implementations must return exactly one series per
// requested symbol, in request order, even when the provider answers with
// a joint multi-symbol payload.
type Fetcher interface {
	FetchSeriesPair(symbols []string, period model.Period, interval model.Interval) ([]model.QuoteSeries, error)
	Name() string
}
