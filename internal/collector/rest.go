package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"MCXTracker/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted quote API that
// serves one symbol per call. Used when a base URL is configured; Yahoo is
// the default otherwise.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a new fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restPoint is the expected JSON shape of one series element.
type restPoint struct {
	Timestamp int64   `json:"timestamp"`
	Close     float64 `json:"close"`
}

// FetchSeriesPair fetches each symbol independently; the provider has no
// joint endpoint.
func (f *RestFetcher) FetchSeriesPair(symbols []string, period model.Period, interval model.Interval) ([]model.QuoteSeries, error) {
	series := make([]model.QuoteSeries, 0, len(symbols))
	for _, sym := range symbols {
		s, err := f.fetchSeries(sym, period, interval)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func (f *RestFetcher) fetchSeries(symbol string, period model.Period, interval model.Interval) (model.QuoteSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/series?symbol=%s&range=%s&interval=%s",
		f.BaseURL, url.QueryEscape(symbol), period, interval)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return model.QuoteSeries{}, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return model.QuoteSeries{}, fmt.Errorf("fetch series: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.QuoteSeries{}, fmt.Errorf("fetch series: status %d, body: %s", resp.StatusCode, string(body))
	}
	var raw []restPoint
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return model.QuoteSeries{}, fmt.Errorf("decode series: %w", err)
	}
	points := make([]model.QuotePoint, 0, len(raw))
	for _, p := range raw {
		if p.Close == 0 {
			continue
		}
		points = append(points, model.QuotePoint{Time: naiveDate(p.Timestamp), Close: p.Close})
	}
	return model.QuoteSeries{Symbol: symbol, Points: dedupeAscending(points)}, nil
}
