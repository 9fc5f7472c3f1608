package notifier

import (
	"fmt"
	"strings"
	"time"

	"MCXTracker/internal/model"
	"MCXTracker/internal/tracker"
)

func verdictEmoji(v model.Verdict) string {
	switch v {
	case model.VerdictStrongBuy:
		return "🟢"
	case model.VerdictBuyOnDips:
		return "🟩"
	case model.VerdictSellOrAvoid:
		return "🔴"
	case model.VerdictInsufficientData:
		return "⏳"
	default:
		return "🟠"
	}
}

// FormatSignalReport formats one analysis run into a Telegram message.
func FormatSignalReport(a *tracker.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>MCX %s</b> | %s\n\n", a.Contract.Name, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Derived price: ₹%.0f (per %s)\n", a.Latest.DerivedPrice, a.Contract.DisplayUnit))
	b.WriteString(fmt.Sprintf("Change: %+.0f\n", a.Change))
	if a.Trend != "" {
		b.WriteString(fmt.Sprintf("Trend (EMA50): %s\n", a.Trend))
	}
	b.WriteString(fmt.Sprintf("MACD: %s\n\n", a.MACDStatus))

	b.WriteString(fmt.Sprintf("%s <b>%s</b> (score %+d)\n", verdictEmoji(a.Signal.Verdict), a.Signal.Verdict, a.Signal.Score))
	for _, r := range a.Signal.Reasons {
		b.WriteString(fmt.Sprintf("  • %s\n", r))
	}

	if model.IsDefined(a.Latest.RSI) {
		b.WriteString(fmt.Sprintf("\nRSI(14): %.1f\n", a.Latest.RSI))
	}
	if model.IsDefined(a.Latest.LowerBand) {
		b.WriteString(fmt.Sprintf("Bands: %.0f .. %.0f\n", a.Latest.LowerBand, a.Latest.UpperBand))
	}
	b.WriteString(fmt.Sprintf("Drawdown from peak: %.1f%%\n", a.Latest.DrawdownPct))

	b.WriteString(fmt.Sprintf("\n💰 Lot value: ₹%s | Margin: ₹%s\n",
		a.Margin.ContractValue.Round(0), a.Margin.MarginRequired.Round(0)))

	return b.String()
}

// FormatMarginLine renders one contract's margin estimate for list views.
func FormatMarginLine(spec model.ContractSpec, est model.MarginEstimate) string {
	return fmt.Sprintf("%s: value ₹%s, margin ₹%s (%.0f%%)",
		spec.Name, est.ContractValue.Round(0), est.MarginRequired.Round(0), spec.MarginPercent*100)
}
