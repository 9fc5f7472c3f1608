package calculator

import "math"

// EMASeries computes an exponential moving average with the standard span
// parameterization (decay 2/(span+1)). The recursion is seeded with the
// simple average of the first full window, so the first defined cell sits
// span-1 rows after the first defined input. Undefined prefixes in the
// input (e.g. a MACD line) are skipped, not treated as zero.
func EMASeries(prices []float64, span int) []float64 {
	n := len(prices)
	out := undefinedSlice(n)
	if span <= 0 {
		return out
	}

	start := 0
	for start < n && math.IsNaN(prices[start]) {
		start++
	}
	if n-start < span {
		return out
	}

	var seed float64
	for i := start; i < start+span; i++ {
		seed += prices[i]
	}
	seed /= float64(span)

	alpha := 2.0 / (float64(span) + 1.0)
	ema := seed
	out[start+span-1] = ema
	for i := start + span; i < n; i++ {
		ema = alpha*prices[i] + (1-alpha)*ema
		out[i] = ema
	}
	return out
}

// MACDSeries computes the MACD line (EMA12 − EMA26) and its EMA9 signal
// line over the price series.
func MACDSeries(prices []float64) (macd, signal []float64) {
	ema12 := EMASeries(prices, 12)
	ema26 := EMASeries(prices, 26)

	n := len(prices)
	macd = undefinedSlice(n)
	for i := 0; i < n; i++ {
		if math.IsNaN(ema12[i]) || math.IsNaN(ema26[i]) {
			continue
		}
		macd[i] = ema12[i] - ema26[i]
	}
	signal = EMASeries(macd, 9)
	return macd, signal
}
