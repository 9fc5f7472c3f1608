package model

import "github.com/shopspring/decimal"

// MarginEstimate is the estimated cost of holding one lot at the latest
// derived price. Money values use exact decimals.
type MarginEstimate struct {
	UnitsInLot     float64         `json:"units_in_lot"`
	ContractValue  decimal.Decimal `json:"total_contract_value"`
	MarginRequired decimal.Decimal `json:"margin_required"`
}
