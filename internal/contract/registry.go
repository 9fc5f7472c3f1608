package contract

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"MCXTracker/internal/margin"
	"MCXTracker/internal/model"
)

//go:embed contracts.yaml
var contractsYAML []byte

// ErrUnknownContract is returned when a lookup names a contract that is
// not in the table.
var ErrUnknownContract = fmt.Errorf("unknown contract")

// Registry is the read-only contract specification table, loaded once at
// process start. Adding a contract or correcting a lot size is a table
// edit; no other component changes.
type Registry struct {
	byName map[string]model.ContractSpec
	names  []string
}

// Load parses and validates the embedded contract table.
func Load() (*Registry, error) {
	var doc struct {
		Contracts []model.ContractSpec `yaml:"contracts"`
	}
	if err := yaml.Unmarshal(contractsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse contract table: %w", err)
	}
	if len(doc.Contracts) == 0 {
		return nil, fmt.Errorf("contract table is empty")
	}

	r := &Registry{byName: make(map[string]model.ContractSpec, len(doc.Contracts))}
	for _, spec := range doc.Contracts {
		if err := validate(spec); err != nil {
			return nil, fmt.Errorf("contract %q: %w", spec.Name, err)
		}
		if _, dup := r.byName[spec.Name]; dup {
			return nil, fmt.Errorf("contract %q: duplicate name", spec.Name)
		}
		r.byName[spec.Name] = spec
		r.names = append(r.names, spec.Name)
	}
	return r, nil
}

func validate(spec model.ContractSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("name is required")
	}
	if spec.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if spec.UnitMultiplier <= 0 {
		return fmt.Errorf("unit_multiplier must be positive")
	}
	if spec.LotQuantity <= 0 {
		return fmt.Errorf("lot_quantity must be positive")
	}
	if spec.MarginPercent <= 0 || spec.MarginPercent >= 1 {
		return fmt.Errorf("margin_percent must be in (0, 1)")
	}
	if spec.Commodity != model.CommodityGold && spec.Commodity != model.CommoditySilver {
		return fmt.Errorf("unknown commodity %q", spec.Commodity)
	}
	// Catch unparseable display units at startup, not per request.
	if _, err := margin.DisplayUnitQuantity(spec.DisplayUnit); err != nil {
		return err
	}
	return nil
}

// Lookup resolves a user-facing contract name.
func (r *Registry) Lookup(name string) (model.ContractSpec, error) {
	spec, found := r.byName[name]
	if !found {
		return model.ContractSpec{}, fmt.Errorf("%w: %q", ErrUnknownContract, name)
	}
	return spec, nil
}

// Names lists all contract names in table order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
