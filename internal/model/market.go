package model

import (
	"fmt"
	"math"
	"time"
)

// Period is the lookback range requested from the quote provider.
type Period string

const (
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	PeriodMax Period = "max"
)

// Interval is the bucket size of the requested series.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

var validPeriods = map[Period]bool{
	Period1Mo: true, Period3Mo: true, Period6Mo: true,
	Period1Y: true, Period2Y: true, Period5Y: true, PeriodMax: true,
}

var validIntervals = map[Interval]bool{
	IntervalDaily: true, IntervalWeekly: true, IntervalMonthly: true,
}

// ParsePeriod validates a user-supplied period string.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !validPeriods[p] {
		return "", fmt.Errorf("unknown period %q", s)
	}
	return p, nil
}

// ParseInterval validates a user-supplied interval string.
func ParseInterval(s string) (Interval, error) {
	iv := Interval(s)
	if !validIntervals[iv] {
		return "", fmt.Errorf("unknown interval %q", s)
	}
	return iv, nil
}

// QuotePoint is one close observation of a single instrument.
type QuotePoint struct {
	Time  time.Time
	Close float64
}

// QuoteSeries holds the close series for one instrument, ascending by time,
// timestamps already stripped to naive UTC so series from different sources
// are comparable.
type QuoteSeries struct {
	Symbol string
	Points []QuotePoint
}

// Empty reports whether the series carries no observations.
func (s QuoteSeries) Empty() bool { return len(s.Points) == 0 }

// Row is one aligned observation: the foreign asset price, the currency
// rate and, once the converter has run, the derived local-market price.
type Row struct {
	Time         time.Time
	AssetPrice   float64
	CurrencyRate float64
	DerivedPrice float64
}

// AlignedTable is the timestamp-keyed join of the asset and currency
// series. Invariant: every row has both AssetPrice and CurrencyRate set.
type AlignedTable []Row

// Empty reports whether alignment produced no usable rows.
func (t AlignedTable) Empty() bool { return len(t) == 0 }

// IndicatorRow extends a priced row with the computed indicator columns.
// Columns without enough history hold Undefined (NaN), never a fabricated
// number.
type IndicatorRow struct {
	Row
	RSI         float64
	SMA20       float64
	Std20       float64
	UpperBand   float64
	LowerBand   float64
	EMA20       float64
	EMA50       float64
	MACD        float64
	MACDSignal  float64
	PeakToDate  float64
	DrawdownPct float64
}

// IndicatorTable is the fully enriched table handed to the presentation
// boundary.
type IndicatorTable []IndicatorRow

// Latest returns the newest row, or false when the table is empty.
func (t IndicatorTable) Latest() (IndicatorRow, bool) {
	if len(t) == 0 {
		return IndicatorRow{}, false
	}
	return t[len(t)-1], true
}

// Tail returns the last n rows (all rows when fewer exist).
func (t IndicatorTable) Tail(n int) IndicatorTable {
	if len(t) <= n {
		return t
	}
	return t[len(t)-n:]
}

// Undefined is the explicit marker for indicator cells that lack enough
// history.
func Undefined() float64 { return math.NaN() }

// IsDefined reports whether an indicator cell holds a real value.
func IsDefined(v float64) bool { return !math.IsNaN(v) }
