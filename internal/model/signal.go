package model

// Verdict is the discrete outcome of the signal classifier.
type Verdict string

const (
	VerdictStrongBuy        Verdict = "STRONG_BUY"
	VerdictBuyOnDips        Verdict = "BUY_ON_DIPS"
	VerdictWaitAndWatch     Verdict = "WAIT_AND_WATCH"
	VerdictSellOrAvoid      Verdict = "SELL_OR_AVOID"
	VerdictInsufficientData Verdict = "INSUFFICIENT_DATA"
)

// Signal is the classifier output for the latest indicator row. Stateless
// and never persisted by the core pipeline.
type Signal struct {
	Verdict Verdict  `json:"verdict"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
