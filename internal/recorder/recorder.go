package recorder

// SignalSnapshot is one scheduled signal run, flattened for history
// queries. The core pipeline itself never persists; this history is an
// opt-in convenience of the alert bot.
type SignalSnapshot struct {
	Contract     string
	Period       string
	Interval     string
	DerivedPrice float64
	RSI          float64
	MACD         float64
	MACDSignal   float64
	DrawdownPct  float64
	Verdict      string
	Score        int
	Reasons      string
}

// Recorder persists signal history for later analysis.
type Recorder interface {
	RecordSignal(snap *SignalSnapshot) error
	Close() error
}
