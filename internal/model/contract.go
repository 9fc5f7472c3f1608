package model

// Commodity distinguishes the two supported contract families.
type Commodity string

const (
	CommodityGold   Commodity = "GOLD"
	CommoditySilver Commodity = "SILVER"
)

// ContractSpec is the static description of one exchange contract.
// Loaded once at startup from the contract table; never mutated.
//
// LotQuantity is expressed in grams for gold contracts and in display
// units (kilograms) for silver contracts. The margin estimator depends on
// that asymmetry.
type ContractSpec struct {
	Name           string    `yaml:"name" json:"name"`
	Ticker         string    `yaml:"ticker" json:"ticker"`
	UnitMultiplier float64   `yaml:"unit_multiplier" json:"unit_multiplier"`
	DisplayUnit    string    `yaml:"display_unit" json:"display_unit"`
	LotQuantity    float64   `yaml:"lot_quantity" json:"lot_quantity"`
	MarginPercent  float64   `yaml:"margin_percent" json:"margin_percent"`
	Commodity      Commodity `yaml:"commodity" json:"commodity"`
}
