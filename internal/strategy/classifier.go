package strategy

import "MCXTracker/internal/model"

// Verdict score thresholds. Deliberately asymmetric: the bar for SELL is
// stronger than the bar for BUY.
const (
	strongBuyScore = 3
	buyOnDipsScore = 1
	sellScore      = -2
)

// Classify maps the latest indicator row to a discrete verdict with
// supporting reasons. Pure function: the same row always yields the same
// signal.
//
// Scoring: RSI < 30 adds 2 ("oversold"), RSI > 70 subtracts 2
// ("overbought"); price below the lower Bollinger band adds 3; MACD above
// its signal line adds 1, otherwise subtracts 1. An undefined RSI short-
// circuits to INSUFFICIENT_DATA before any other rule runs.
func Classify(row model.IndicatorRow) model.Signal {
	if !model.IsDefined(row.RSI) {
		return model.Signal{
			Verdict: model.VerdictInsufficientData,
			Reasons: []string{"insufficient history"},
		}
	}

	score := 0
	var reasons []string

	if row.RSI < 30 {
		score += 2
		reasons = append(reasons, "oversold")
	} else if row.RSI > 70 {
		score -= 2
		reasons = append(reasons, "overbought")
	}

	if model.IsDefined(row.LowerBand) && row.DerivedPrice < row.LowerBand {
		score += 3
		reasons = append(reasons, "price below lower band")
	}

	// Always fires; an undefined MACD comparison is false and falls into
	// the bearish branch.
	if row.MACD > row.MACDSignal {
		score++
	} else {
		score--
	}

	return model.Signal{Verdict: verdictFor(score), Score: score, Reasons: reasons}
}

func verdictFor(score int) model.Verdict {
	switch {
	case score >= strongBuyScore:
		return model.VerdictStrongBuy
	case score >= buyOnDipsScore:
		return model.VerdictBuyOnDips
	case score <= sellScore:
		return model.VerdictSellOrAvoid
	default:
		return model.VerdictWaitAndWatch
	}
}
