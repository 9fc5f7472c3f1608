package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MCXTracker/internal/cache"
	"MCXTracker/internal/collector"
	"MCXTracker/internal/contract"
	"MCXTracker/internal/model"
	"MCXTracker/internal/tracker"
)

func testServer(t *testing.T, mock *collector.MockFetcher) *Server {
	t.Helper()
	reg, err := contract.Load()
	if err != nil {
		t.Fatalf("load contracts: %v", err)
	}
	svc := tracker.NewService(collector.NewCollector(mock), reg, cache.New(cache.DefaultTTL), "INR=X")
	return New(svc, "GOLD", 12)
}

func mockSeries(n int) map[string][]model.QuotePoint {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	asset := make([]model.QuotePoint, 0, n)
	rate := make([]model.QuotePoint, 0, n)
	for i := 0; i < n; i++ {
		asset = append(asset, model.QuotePoint{Time: day, Close: 2000 + float64(i%9)})
		rate = append(rate, model.QuotePoint{Time: day, Close: 83})
		day = day.AddDate(0, 0, 1)
	}
	return map[string][]model.QuotePoint{"GC=F": asset, "INR=X": rate}
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestGetContracts(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	w := doGet(t, s, "/api/v1/contracts")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var specs []model.ContractSpec
	if err := json.Unmarshal(w.Body.Bytes(), &specs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(specs) < 2 {
		t.Errorf("want at least GOLD and SILVER, got %d contracts", len(specs))
	}
}

func TestGetAnalysis_Defaults(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	w := doGet(t, s, "/api/v1/analysis")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Contract    model.ContractSpec `json:"contract"`
		DutyPercent float64            `json:"duty_percent"`
		Signal      model.Signal       `json:"signal"`
		Rows        []json.RawMessage  `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Contract.Name != "GOLD" {
		t.Errorf("contract = %q, want default GOLD", body.Contract.Name)
	}
	if body.DutyPercent != 12 {
		t.Errorf("duty = %v, want default 12", body.DutyPercent)
	}
	if body.Signal.Verdict == "" {
		t.Error("verdict missing from response")
	}
	if len(body.Rows) != 10 {
		t.Errorf("tail rows = %d, want 10", len(body.Rows))
	}
}

func TestGetAnalysis_UnknownContract(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	w := doGet(t, s, "/api/v1/analysis?contract=PLATINUM")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetAnalysis_BadInputs(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/analysis?period=2centuries", http.StatusBadRequest},
		{"/api/v1/analysis?interval=1fortnight", http.StatusBadRequest},
		{"/api/v1/analysis?duty=lots", http.StatusBadRequest},
		{"/api/v1/analysis?duty=99", http.StatusBadRequest},
		// strconv.ParseFloat accepts these spellings; they must still be
		// rejected as out of range, not crash the JSON encoder downstream.
		{"/api/v1/analysis?duty=NaN", http.StatusBadRequest},
		{"/api/v1/analysis?duty=Inf", http.StatusBadRequest},
		{"/api/v1/analysis?duty=-Inf", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := doGet(t, s, tt.path); w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestGetAnalysis_DataUnavailable(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: map[string][]model.QuotePoint{}})
	w := doGet(t, s, "/api/v1/analysis")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestPostRefresh(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/refresh", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Series: mockSeries(70)})
	if w := doGet(t, s, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
