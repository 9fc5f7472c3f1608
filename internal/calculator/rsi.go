package calculator

import "MCXTracker/internal/model"

// RSISeries computes the Relative Strength Index using a simple rolling
// mean of gains and losses over the trailing period (Cutler's variant).
// Wilder's exponential smoothing is NOT used here; the two diverge on
// volatile series and this engine is deliberately consistent with the
// rolling-mean form everywhere.
//
// Index i is defined once `period` deltas exist, i.e. from i == period
// onward; earlier cells hold the undefined marker. When the window has no
// losses RSI is 100 by convention; a window with no movement at all stays
// undefined.
func RSISeries(prices []float64, period int) []float64 {
	n := len(prices)
	out := undefinedSlice(n)
	if period <= 0 || n < period+1 {
		return out
	}

	deltas := make([]float64, n)
	for i := 1; i < n; i++ {
		deltas[i] = prices[i] - prices[i-1]
	}

	for i := period; i < n; i++ {
		var gains, losses float64
		for j := i - period + 1; j <= i; j++ {
			if deltas[j] > 0 {
				gains += deltas[j]
			} else {
				losses -= deltas[j]
			}
		}
		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)

		switch {
		case avgLoss == 0 && avgGain == 0:
			// flat window, no signal
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out
}

func undefinedSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = model.Undefined()
	}
	return out
}
