package calculator

import "math"

// SMASeries computes a trailing simple moving average; cells before the
// window fills hold the undefined marker.
func SMASeries(prices []float64, period int) []float64 {
	n := len(prices)
	out := undefinedSlice(n)
	if period <= 0 || n < period {
		return out
	}
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// StdSeries computes the trailing population standard deviation over the
// window.
func StdSeries(prices []float64, period int) []float64 {
	n := len(prices)
	out := undefinedSlice(n)
	if period <= 0 || n < period {
		return out
	}
	for i := period - 1; i < n; i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}
		mean := sum / float64(period)
		var sq float64
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - mean
			sq += d * d
		}
		out[i] = math.Sqrt(sq / float64(period))
	}
	return out
}

// BollingerSeries computes the 20-period bands: mean ± width·σ.
func BollingerSeries(prices []float64, period int, width float64) (sma, std, upper, lower []float64) {
	sma = SMASeries(prices, period)
	std = StdSeries(prices, period)
	n := len(prices)
	upper = undefinedSlice(n)
	lower = undefinedSlice(n)
	for i := 0; i < n; i++ {
		if math.IsNaN(sma[i]) || math.IsNaN(std[i]) {
			continue
		}
		upper[i] = sma[i] + width*std[i]
		lower[i] = sma[i] - width*std[i]
	}
	return sma, std, upper, lower
}
