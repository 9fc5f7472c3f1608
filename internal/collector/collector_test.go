package collector

import (
	"errors"
	"testing"
	"time"

	"MCXTracker/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func series(symbol string, points ...model.QuotePoint) model.QuoteSeries {
	return model.QuoteSeries{Symbol: symbol, Points: points}
}

func TestAlign_ForwardFillsCurrency(t *testing.T) {
	asset := series("GC=F",
		model.QuotePoint{Time: day(1), Close: 2000},
		model.QuotePoint{Time: day(2), Close: 2010},
		model.QuotePoint{Time: day(3), Close: 2020},
	)
	// Currency is missing day 2 (different holiday calendar).
	currency := series("INR=X",
		model.QuotePoint{Time: day(1), Close: 83.0},
		model.QuotePoint{Time: day(3), Close: 83.4},
	)

	table := Align(asset, currency)
	if len(table) != 3 {
		t.Fatalf("want 3 rows, got %d", len(table))
	}
	if table[1].CurrencyRate != 83.0 {
		t.Errorf("day 2 rate should forward-fill from day 1, got %v", table[1].CurrencyRate)
	}
	for i, row := range table {
		if row.AssetPrice == 0 || row.CurrencyRate == 0 {
			t.Errorf("row %d incomplete after alignment: %+v", i, row)
		}
	}
}

func TestAlign_DropsRowsBeforeFirstFill(t *testing.T) {
	asset := series("GC=F",
		model.QuotePoint{Time: day(1), Close: 2000},
		model.QuotePoint{Time: day(2), Close: 2010},
	)
	// No currency value exists on or before day 1: that row must drop.
	currency := series("INR=X",
		model.QuotePoint{Time: day(2), Close: 83.0},
	)

	table := Align(asset, currency)
	if len(table) != 1 {
		t.Fatalf("want 1 row, got %d", len(table))
	}
	if !table[0].Time.Equal(day(2)) {
		t.Errorf("surviving row should be day 2, got %v", table[0].Time)
	}
}

func TestAlign_FillDoesNotChangeCompleteRows(t *testing.T) {
	asset := series("GC=F",
		model.QuotePoint{Time: day(1), Close: 2000},
		model.QuotePoint{Time: day(2), Close: 2010},
		model.QuotePoint{Time: day(3), Close: 2020},
	)
	full := series("INR=X",
		model.QuotePoint{Time: day(1), Close: 83.0},
		model.QuotePoint{Time: day(2), Close: 83.2},
		model.QuotePoint{Time: day(3), Close: 83.4},
	)
	gapped := series("INR=X",
		model.QuotePoint{Time: day(1), Close: 83.0},
		model.QuotePoint{Time: day(3), Close: 83.4},
	)

	a := Align(asset, full)
	b := Align(asset, gapped)
	// Rows complete in both runs carry identical values.
	for _, want := range a {
		for _, got := range b {
			if got.Time.Equal(want.Time) && !want.Time.Equal(day(2)) {
				if got.AssetPrice != want.AssetPrice || got.CurrencyRate != want.CurrencyRate {
					t.Errorf("row %v changed by an unrelated gap: %+v vs %+v", want.Time, got, want)
				}
			}
		}
	}
}

func TestAlign_CurrencyOnlyDatesExtendTheIndex(t *testing.T) {
	// Currency trades on a day the asset does not: asset forward-fills too.
	asset := series("GC=F",
		model.QuotePoint{Time: day(1), Close: 2000},
	)
	currency := series("INR=X",
		model.QuotePoint{Time: day(1), Close: 83.0},
		model.QuotePoint{Time: day(2), Close: 83.2},
	)
	table := Align(asset, currency)
	if len(table) != 2 {
		t.Fatalf("want 2 rows, got %d", len(table))
	}
	if table[1].AssetPrice != 2000 {
		t.Errorf("asset should forward-fill onto currency-only dates, got %v", table[1].AssetPrice)
	}
}

func TestFetchAligned_EmptyOnError(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: errors.New("boom")})
	table := col.FetchAligned("NOFALLBACK", "ALSONONE", model.Period6Mo, model.IntervalDaily)
	if !table.Empty() {
		t.Fatalf("want explicit empty table on fetch failure, got %d rows", len(table))
	}
}

func TestFetchAligned_FallbackHop(t *testing.T) {
	mock := &MockFetcher{Series: map[string][]model.QuotePoint{
		// Only the spot-equivalents have data.
		"XAUUSD=X": {{Time: day(1), Close: 2000}, {Time: day(2), Close: 2010}},
		"USDINR=X": {{Time: day(1), Close: 83}, {Time: day(2), Close: 83.2}},
	}}
	col := NewCollector(mock)
	table := col.FetchAligned("GC=F", "INR=X", model.Period6Mo, model.IntervalDaily)
	if table.Empty() {
		t.Fatal("fallback hop should have produced data")
	}
	if mock.Calls != 2 {
		t.Errorf("want exactly one fallback attempt (2 calls), got %d", mock.Calls)
	}
}

func TestFetchAligned_AtMostOneHop(t *testing.T) {
	mock := &MockFetcher{Series: map[string][]model.QuotePoint{}}
	col := NewCollector(mock)
	table := col.FetchAligned("GC=F", "INR=X", model.Period6Mo, model.IntervalDaily)
	if !table.Empty() {
		t.Fatal("want empty table when fallback also fails")
	}
	if mock.Calls != 2 {
		t.Errorf("want 2 calls (primary + one hop), got %d", mock.Calls)
	}
}
