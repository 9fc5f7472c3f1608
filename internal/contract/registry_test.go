package contract

import (
	"errors"
	"testing"

	"MCXTracker/internal/model"
)

func TestLoad_EmbeddedTable(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(r.Names()) == 0 {
		t.Fatal("expected at least one contract")
	}

	gold, err := r.Lookup("GOLD")
	if err != nil {
		t.Fatalf("lookup GOLD: %v", err)
	}
	if gold.Commodity != model.CommodityGold {
		t.Errorf("GOLD commodity = %s", gold.Commodity)
	}
	if gold.UnitMultiplier != 10 || gold.LotQuantity != 1000 {
		t.Errorf("GOLD spec = %+v", gold)
	}

	silver, err := r.Lookup("SILVER")
	if err != nil {
		t.Fatalf("lookup SILVER: %v", err)
	}
	if silver.Commodity != model.CommoditySilver {
		t.Errorf("SILVER commodity = %s", silver.Commodity)
	}
}

func TestLookup_UnknownContract(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = r.Lookup("PLATINUM")
	if !errors.Is(err, ErrUnknownContract) {
		t.Fatalf("want ErrUnknownContract, got %v", err)
	}
}

func TestNames_ReturnsACopy(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	names := r.Names()
	names[0] = "MUTATED"
	if r.Names()[0] == "MUTATED" {
		t.Error("Names must not expose internal state")
	}
}
