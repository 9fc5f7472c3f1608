package margin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"MCXTracker/internal/model"
)

// DisplayUnitQuantity parses a contract's display-unit label ("1 gram",
// "8 grams", "10 grams", "1 kilogram") into its size in grams.
func DisplayUnitQuantity(label string) (float64, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) != 2 {
		return 0, fmt.Errorf("display unit %q: want \"<count> <unit>\"", label)
	}
	count, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || count <= 0 {
		return 0, fmt.Errorf("display unit %q: bad count", label)
	}
	switch strings.TrimSuffix(fields[1], "s") {
	case "gram":
		return count, nil
	case "kilogram":
		return count * 1000, nil
	default:
		return 0, fmt.Errorf("display unit %q: unknown unit", label)
	}
}

// Estimate converts the latest derived price and a contract specification
// into the contract value and margin requirement for one lot.
//
// Gold lot quantities are expressed in grams and must be divided by the
// display-unit size; silver lot quantities are already expressed in display
// units and are used as-is. The asymmetry is part of the contract table's
// contract and is preserved, not normalized away.
//
// latestPrice must be a finite positive number; the caller validates that
// the indicator table is non-empty first.
func Estimate(latestPrice float64, spec model.ContractSpec) (model.MarginEstimate, error) {
	unitsInLot := spec.LotQuantity
	if spec.Commodity == model.CommodityGold {
		quantity, err := DisplayUnitQuantity(spec.DisplayUnit)
		if err != nil {
			return model.MarginEstimate{}, err
		}
		unitsInLot = spec.LotQuantity / quantity
	}

	price := decimal.NewFromFloat(latestPrice)
	value := price.Mul(decimal.NewFromFloat(unitsInLot))
	required := value.Mul(decimal.NewFromFloat(spec.MarginPercent))

	return model.MarginEstimate{
		UnitsInLot:     unitsInLot,
		ContractValue:  value,
		MarginRequired: required,
	}, nil
}
