package collector

import (
	"testing"
	"time"

	"MCXTracker/internal/model"
)

func sparkSlot(symbol string, timestamps []int64, closes []interface{}) sparkResult {
	var res sparkResult
	res.Symbol = symbol
	var chart chartResponse
	chart.Timestamp = timestamps
	chart.Indicators.Quote = append(chart.Indicators.Quote, struct {
		Close []interface{} `json:"close"`
	}{Close: closes})
	res.Response = []chartResponse{chart}
	return res
}

func TestNormalizeSeries_BySymbol(t *testing.T) {
	results := []sparkResult{
		sparkSlot("INR=X", []int64{1709251200}, []interface{}{83.1}),
		sparkSlot("GC=F", []int64{1709251200}, []interface{}{2050.0}),
	}
	// Requested order differs from response order; lookup is by name.
	series, err := normalizeSeries(results, []string{"GC=F", "INR=X"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if series[0].Points[0].Close != 2050.0 || series[1].Points[0].Close != 83.1 {
		t.Errorf("symbol lookup picked wrong columns: %+v", series)
	}
}

func TestNormalizeSeries_PositionalFallback(t *testing.T) {
	// Schema variant: the provider omitted symbol keys entirely.
	results := []sparkResult{
		sparkSlot("", []int64{1709251200}, []interface{}{2050.0}),
		sparkSlot("", []int64{1709251200}, []interface{}{83.1}),
	}
	series, err := normalizeSeries(results, []string{"GC=F", "INR=X"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if series[0].Symbol != "GC=F" || series[0].Points[0].Close != 2050.0 {
		t.Errorf("positional fallback failed for slot 0: %+v", series[0])
	}
	if series[1].Points[0].Close != 83.1 {
		t.Errorf("positional fallback failed for slot 1: %+v", series[1])
	}
}

func TestNormalizeSeries_MissingColumn(t *testing.T) {
	results := []sparkResult{
		sparkSlot("GC=F", []int64{1709251200}, []interface{}{2050.0}),
	}
	if _, err := normalizeSeries(results, []string{"GC=F", "INR=X"}); err == nil {
		t.Fatal("want error when a symbol has neither a name nor a positional column")
	}
}

func TestNormalizeSeries_SkipsNullBars(t *testing.T) {
	results := []sparkResult{
		sparkSlot("GC=F", []int64{1709251200, 1709337600, 1709424000},
			[]interface{}{2050.0, nil, 2060.0}),
	}
	series, err := normalizeSeries(results, []string{"GC=F"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(series[0].Points) != 2 {
		t.Errorf("null bars must be skipped, got %d points", len(series[0].Points))
	}
}

func TestNaiveDate_StripsTimezoneAndTime(t *testing.T) {
	// 2024-03-01 18:30 UTC → naive 2024-03-01.
	got := naiveDate(1709317800)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("naiveDate = %v, want %v", got, want)
	}
}

func TestDedupeAscending(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	points := dedupeAscending([]model.QuotePoint{
		{Time: d2, Close: 10},
		{Time: d1, Close: 20},
		{Time: d1, Close: 30},
	})
	if len(points) != 2 {
		t.Fatalf("want 2 points, got %d", len(points))
	}
	if !points[0].Time.Equal(d1) || points[0].Close != 30 {
		t.Errorf("duplicates keep the last observation: %+v", points[0])
	}
}
