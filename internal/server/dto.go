package server

import (
	"MCXTracker/internal/model"
	"MCXTracker/internal/tracker"
)

// rowDTO is the JSON shape of one indicator row. Undefined cells become
// null; encoding/json rejects NaN, so the marker cannot cross the wire
// directly.
type rowDTO struct {
	Date         string   `json:"date"`
	AssetPrice   float64  `json:"asset_price"`
	CurrencyRate float64  `json:"currency_rate"`
	DerivedPrice float64  `json:"derived_price"`
	RSI          *float64 `json:"rsi"`
	SMA20        *float64 `json:"sma_20"`
	UpperBand    *float64 `json:"upper_band"`
	LowerBand    *float64 `json:"lower_band"`
	EMA20        *float64 `json:"ema_20"`
	EMA50        *float64 `json:"ema_50"`
	MACD         *float64 `json:"macd"`
	MACDSignal   *float64 `json:"macd_signal"`
	PeakToDate   float64  `json:"peak_to_date"`
	DrawdownPct  float64  `json:"drawdown_pct"`
}

type analysisDTO struct {
	Contract    model.ContractSpec   `json:"contract"`
	Period      model.Period         `json:"period"`
	Interval    model.Interval       `json:"interval"`
	DutyPercent float64              `json:"duty_percent"`
	Latest      rowDTO               `json:"latest"`
	Change      float64              `json:"change"`
	Trend       string               `json:"trend,omitempty"`
	MACDStatus  string               `json:"macd_status"`
	Signal      model.Signal         `json:"signal"`
	Margin      model.MarginEstimate `json:"margin"`
	Rows        []rowDTO             `json:"rows"`
}

func optional(v float64) *float64 {
	if !model.IsDefined(v) {
		return nil
	}
	return &v
}

func toRowDTO(row model.IndicatorRow) rowDTO {
	return rowDTO{
		Date:         row.Time.Format("2006-01-02"),
		AssetPrice:   row.AssetPrice,
		CurrencyRate: row.CurrencyRate,
		DerivedPrice: row.DerivedPrice,
		RSI:          optional(row.RSI),
		SMA20:        optional(row.SMA20),
		UpperBand:    optional(row.UpperBand),
		LowerBand:    optional(row.LowerBand),
		EMA20:        optional(row.EMA20),
		EMA50:        optional(row.EMA50),
		MACD:         optional(row.MACD),
		MACDSignal:   optional(row.MACDSignal),
		PeakToDate:   row.PeakToDate,
		DrawdownPct:  row.DrawdownPct,
	}
}

// tailRows bounds the raw-data view the way the dashboard shows it.
const tailRows = 10

func toAnalysisDTO(a *tracker.Analysis) analysisDTO {
	tail := a.Table.Tail(tailRows)
	rows := make([]rowDTO, len(tail))
	for i, r := range tail {
		rows[i] = toRowDTO(r)
	}
	return analysisDTO{
		Contract:    a.Contract,
		Period:      a.Period,
		Interval:    a.Interval,
		DutyPercent: a.DutyPercent,
		Latest:      toRowDTO(a.Latest),
		Change:      a.Change,
		Trend:       a.Trend,
		MACDStatus:  a.MACDStatus,
		Signal:      a.Signal,
		Margin:      a.Margin,
		Rows:        rows,
	}
}
