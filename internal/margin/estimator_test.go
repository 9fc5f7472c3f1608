package margin

import (
	"testing"

	"github.com/shopspring/decimal"

	"MCXTracker/internal/model"
)

func TestDisplayUnitQuantity(t *testing.T) {
	tests := []struct {
		label string
		want  float64
		ok    bool
	}{
		{"1 gram", 1, true},
		{"8 grams", 8, true},
		{"10 grams", 10, true},
		{"1 kilogram", 1000, true},
		{"2 kilograms", 2000, true},
		{"10 Grams", 10, true},
		{"ten grams", 0, false},
		{"10", 0, false},
		{"10 ounces", 0, false},
		{"-1 gram", 0, false},
	}
	for _, tt := range tests {
		got, err := DisplayUnitQuantity(tt.label)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("%q: got %v, %v; want %v", tt.label, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("%q: expected error", tt.label)
		}
	}
}

func TestEstimate_GoldLot(t *testing.T) {
	spec := model.ContractSpec{
		Name:           "GOLD",
		UnitMultiplier: 10,
		DisplayUnit:    "10 grams",
		LotQuantity:    1000,
		MarginPercent:  0.11,
		Commodity:      model.CommodityGold,
	}
	est, err := Estimate(71000, spec)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.UnitsInLot != 100 {
		t.Errorf("units in lot = %v, want 100", est.UnitsInLot)
	}
	if !est.ContractValue.Equal(decimal.NewFromInt(7100000)) {
		t.Errorf("contract value = %s, want 7100000", est.ContractValue)
	}
	if !est.MarginRequired.Equal(decimal.NewFromInt(781000)) {
		t.Errorf("margin = %s, want 781000", est.MarginRequired)
	}
}

func TestEstimate_SilverLotIsNotDivided(t *testing.T) {
	// Silver lots are already expressed in display units; the estimator
	// must not divide by the display-unit size.
	spec := model.ContractSpec{
		Name:           "SILVER",
		UnitMultiplier: 1000,
		DisplayUnit:    "1 kilogram",
		LotQuantity:    30,
		MarginPercent:  0.10,
		Commodity:      model.CommoditySilver,
	}
	est, err := Estimate(90000, spec)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.UnitsInLot != 30 {
		t.Errorf("units in lot = %v, want 30", est.UnitsInLot)
	}
	if !est.ContractValue.Equal(decimal.NewFromInt(2700000)) {
		t.Errorf("contract value = %s, want 2700000", est.ContractValue)
	}
	if !est.MarginRequired.Equal(decimal.NewFromInt(270000)) {
		t.Errorf("margin = %s, want 270000", est.MarginRequired)
	}
}

func TestEstimate_GoldGuinea(t *testing.T) {
	spec := model.ContractSpec{
		Name:           "GOLD GUINEA",
		UnitMultiplier: 8,
		DisplayUnit:    "8 grams",
		LotQuantity:    8,
		MarginPercent:  0.10,
		Commodity:      model.CommodityGold,
	}
	est, err := Estimate(58000, spec)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if est.UnitsInLot != 1 {
		t.Errorf("units in lot = %v, want 1", est.UnitsInLot)
	}
	if !est.ContractValue.Equal(decimal.NewFromInt(58000)) {
		t.Errorf("contract value = %s, want 58000", est.ContractValue)
	}
}

func TestEstimate_BadDisplayUnit(t *testing.T) {
	spec := model.ContractSpec{
		Name:        "BROKEN",
		DisplayUnit: "a few grams",
		LotQuantity: 100,
		Commodity:   model.CommodityGold,
	}
	if _, err := Estimate(1000, spec); err == nil {
		t.Fatal("expected error for unparseable display unit")
	}
}
