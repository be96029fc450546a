package tables

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape operators use to refresh tariffs and cost
// factors without a rebuild. Only the keys present in the file are
// replaced; everything else keeps its built-in value.
type Overrides struct {
	ElectricityRates     map[string]ElectricityRate `yaml:"electricity_rates"`
	CapitalCostPerKW     map[string]float64         `yaml:"capital_cost_per_kw"`
	SoilConductivity     map[string]float64         `yaml:"soil_conductivity"`
	BoreholeCostPerMeter *float64                   `yaml:"borehole_cost_per_meter"`
}

// Load returns the default tables with the overrides from path applied.
// An empty path returns the defaults unchanged.
func Load(path string) (Tables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, eris.Wrap(err, "tables: read overrides file")
	}

	var ov Overrides
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return Tables{}, eris.Wrap(err, "tables: parse overrides file")
	}

	t.Apply(ov)
	return t, nil
}

// Apply merges ov into t, key by key.
func (t *Tables) Apply(ov Overrides) {
	for state, rate := range ov.ElectricityRates {
		t.ElectricityRates[state] = rate
	}
	for zone, cost := range ov.CapitalCostPerKW {
		t.CapitalCostPerKW[zone] = cost
	}
	for soil, k := range ov.SoilConductivity {
		t.SoilConductivity[soil] = k
	}
	if ov.BoreholeCostPerMeter != nil {
		t.BoreholeCostPerMeter = *ov.BoreholeCostPerMeter
	}
}
