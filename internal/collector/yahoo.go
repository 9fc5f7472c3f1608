package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"MCXTracker/internal/model"
)

// YahooFetcher downloads joint multi-symbol close series from the Yahoo
// Finance spark API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://query1.finance.yahoo.com",
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// sparkEnvelope is the outer response structure of the spark endpoint.
type sparkEnvelope struct {
	Spark struct {
		Result []sparkResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"spark"`
}

// FetchSeriesPair downloads all requested symbols in a single spark call
// and normalizes the response into one series per symbol.
func (f *YahooFetcher) FetchSeriesPair(symbols []string, period model.Period, interval model.Interval) ([]model.QuoteSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/spark?symbols=%s&range=%s&interval=%s",
		f.BaseURL, url.QueryEscape(strings.Join(symbols, ",")), period, interval)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var env sparkEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if env.Spark.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", env.Spark.Error.Description)
	}
	if len(env.Spark.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}
	return normalizeSeries(env.Spark.Result, symbols)
}
