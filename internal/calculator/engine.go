package calculator

import "MCXTracker/internal/model"

// Indicator window sizes.
const (
	RSIPeriod       = 14
	BollingerPeriod = 20
	BollingerWidth  = 2.0
	EMAShortSpan    = 20
	EMALongSpan     = 50
)

// ComputeIndicators enriches a priced table with all indicator columns in
// one deterministic pass. Stateless; the table is fixed-size, not a stream.
func ComputeIndicators(table model.AlignedTable) model.IndicatorTable {
	prices := make([]float64, len(table))
	for i, row := range table {
		prices[i] = row.DerivedPrice
	}

	rsi := RSISeries(prices, RSIPeriod)
	sma, std, upper, lower := BollingerSeries(prices, BollingerPeriod, BollingerWidth)
	ema20 := EMASeries(prices, EMAShortSpan)
	ema50 := EMASeries(prices, EMALongSpan)
	macd, signal := MACDSeries(prices)
	peaks, drawdown := DrawdownSeries(prices)

	out := make(model.IndicatorTable, len(table))
	for i, row := range table {
		out[i] = model.IndicatorRow{
			Row:         row,
			RSI:         rsi[i],
			SMA20:       sma[i],
			Std20:       std[i],
			UpperBand:   upper[i],
			LowerBand:   lower[i],
			EMA20:       ema20[i],
			EMA50:       ema50[i],
			MACD:        macd[i],
			MACDSignal:  signal[i],
			PeakToDate:  peaks[i],
			DrawdownPct: drawdown[i],
		}
	}
	return out
}
