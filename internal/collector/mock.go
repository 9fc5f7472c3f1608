package collector

import (
	"fmt"

	"MCXTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]model.QuotePoint
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeriesPair(symbols []string, _ model.Period, _ model.Interval) ([]model.QuoteSeries, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.QuoteSeries, 0, len(symbols))
	for _, sym := range symbols {
		points, ok := m.Series[sym]
		if !ok {
			return nil, fmt.Errorf("mock: no series for %q", sym)
		}
		out = append(out, model.QuoteSeries{Symbol: sym, Points: points})
	}
	return out, nil
}
