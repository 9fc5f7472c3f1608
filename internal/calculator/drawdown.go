package calculator

// DrawdownSeries computes the running peak of the price series and the
// percentage decline from it. drawdown is ≤ 0 everywhere and exactly 0 at
// each new peak.
func DrawdownSeries(prices []float64) (peaks, drawdownPct []float64) {
	n := len(prices)
	peaks = make([]float64, n)
	drawdownPct = make([]float64, n)
	var peak float64
	for i, p := range prices {
		if i == 0 || p > peak {
			peak = p
		}
		peaks[i] = peak
		if peak != 0 {
			drawdownPct[i] = (p - peak) / peak * 100
		}
	}
	return peaks, drawdownPct
}
