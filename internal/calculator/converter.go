package calculator

import "MCXTracker/internal/model"

// TroyOunceGrams converts a per-troy-ounce quote into a per-gram quote.
const TroyOunceGrams = 31.1035

// DerivePrices computes the local-market contract price for every aligned
// row:
//
//	derived = asset × rate / 31.1035 × unit_multiplier × tax_factor
//
// Pure function of the input table. taxFactor is a calibration knob (import
// duty plus market premium over theoretical parity), not derived from data.
// The input table is assumed fully populated; alignment already dropped
// incomplete rows.
func DerivePrices(table model.AlignedTable, unitMultiplier, taxFactor float64) model.AlignedTable {
	out := make(model.AlignedTable, len(table))
	for i, row := range table {
		row.DerivedPrice = row.AssetPrice * row.CurrencyRate / TroyOunceGrams * unitMultiplier * taxFactor
		out[i] = row
	}
	return out
}
