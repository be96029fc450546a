// Package tables holds the immutable reference data the calculation
// engine works from: ECBC climate zones, cooling intensities by building
// type and tier, state electricity tariffs, soil conductivities, and
// capital cost factors. Tables are built once at startup and never
// mutated afterwards.
package tables

// ClimateZone describes one ECBC climate zone. JSON tags match the
// climate_data section of the result record.
type ClimateZone struct {
	Examples           string  `json:"examples" yaml:"examples"`
	CoolingMonths      int     `json:"cooling_months" yaml:"cooling_months"`
	HeatingMonths      int     `json:"heating_months" yaml:"heating_months"`
	GroundTempC        float64 `json:"ground_temp_C" yaml:"ground_temp_c"`
	SuitabilityScore   int     `json:"suitability_score" yaml:"suitability_score"`
	CoolingHoursPerDay int     `json:"cooling_hours_per_day" yaml:"cooling_hours_per_day"`
	HeatingHoursPerDay int     `json:"heating_hours_per_day" yaml:"heating_hours_per_day"`
}

// ElectricityRate holds a state's tariff in Rs/kWh per consumer category.
type ElectricityRate struct {
	Commercial  float64 `json:"commercial" yaml:"commercial"`
	Residential float64 `json:"residential" yaml:"residential"`
}

// Tables is the full reference data set.
type Tables struct {
	ClimateZones         map[string]ClimateZone
	CoolingIntensity     map[string]map[string]float64
	ElectricityRates     map[string]ElectricityRate
	SoilConductivity     map[string]float64
	CapitalCostPerKW     map[string]float64
	BoreholeCostPerMeter float64
}

const (
	// DefaultZone is the climate zone assumed when a lookup misses.
	DefaultZone = "Composite"
	// DefaultState keys the national-average tariff row.
	DefaultState = "National Average"

	fallbackIntensity   = 0.15
	fallbackCostPerKW   = 20000
	fallbackSuitability = 3
)

// Zone returns the climate zone data for name, falling back to the
// Composite zone when the name is not recognized.
func (t Tables) Zone(name string) ClimateZone {
	if z, ok := t.ClimateZones[name]; ok {
		return z
	}
	return t.ClimateZones[DefaultZone]
}

// Intensity returns the cooling intensity (kW/m2) for a building type
// and tier. Unknown types and unknown tiers both degrade to 0.15.
func (t Tables) Intensity(buildingType, tier string) float64 {
	tiers, ok := t.CoolingIntensity[buildingType]
	if !ok {
		return fallbackIntensity
	}
	if v, ok := tiers[tier]; ok {
		return v
	}
	return fallbackIntensity
}

// Rate returns the electricity tariff row for a state, falling back to
// the national average.
func (t Tables) Rate(state string) ElectricityRate {
	if r, ok := t.ElectricityRates[state]; ok {
		return r
	}
	return t.ElectricityRates[DefaultState]
}

// CapitalCost returns the installed cost per kW of cooling capacity for
// a climate zone (drilling difficulty varies with ground conditions).
func (t Tables) CapitalCost(climate string) float64 {
	if c, ok := t.CapitalCostPerKW[climate]; ok {
		return c
	}
	return fallbackCostPerKW
}

// Default returns the built-in India reference data set (2024-25 tariffs).
func Default() Tables {
	return Tables{
		ClimateZones: map[string]ClimateZone{
			"Hot-Dry": {
				Examples:           "Rajasthan, Gujarat, Maharashtra interior",
				CoolingMonths:      8,
				HeatingMonths:      2,
				GroundTempC:        28,
				SuitabilityScore:   3,
				CoolingHoursPerDay: 10,
				HeatingHoursPerDay: 3,
			},
			"Warm-Humid": {
				Examples:           "Kerala, Goa, Chennai, Coastal Karnataka",
				CoolingMonths:      10,
				HeatingMonths:      0,
				GroundTempC:        26,
				SuitabilityScore:   3,
				CoolingHoursPerDay: 8,
				HeatingHoursPerDay: 0,
			},
			"Composite": {
				Examples:           "Delhi, Punjab, Haryana, UP",
				CoolingMonths:      6,
				HeatingMonths:      3,
				GroundTempC:        24,
				SuitabilityScore:   3,
				CoolingHoursPerDay: 9,
				HeatingHoursPerDay: 6,
			},
			"Temperate": {
				Examples:           "Himachal Pradesh, Uttarakhand",
				CoolingMonths:      3,
				HeatingMonths:      6,
				GroundTempC:        18,
				SuitabilityScore:   2,
				CoolingHoursPerDay: 6,
				HeatingHoursPerDay: 8,
			},
			"Cold": {
				Examples:           "Jammu & Kashmir, Ladakh, High altitude",
				CoolingMonths:      1,
				HeatingMonths:      8,
				GroundTempC:        12,
				SuitabilityScore:   2,
				CoolingHoursPerDay: 4,
				HeatingHoursPerDay: 10,
			},
		},
		CoolingIntensity: map[string]map[string]float64{
			"Office":      {"Tier-1": 0.18, "Tier-2": 0.14, "Tier-3": 0.10},
			"Educational": {"Tier-1": 0.13, "Tier-2": 0.10, "Tier-3": 0.07},
			"Residential": {"Tier-1": 0.12, "Tier-2": 0.08, "Tier-3": 0.05},
			"Hospital":    {"Tier-1": 0.22, "Tier-2": 0.18, "Tier-3": 0.15},
			"Hotel":       {"Tier-1": 0.18, "Tier-2": 0.14, "Tier-3": 0.10},
			"IT/Tech Park": {
				"Tier-1": 0.20, "Tier-2": 0.16, "Tier-3": 0.12,
			},
		},
		ElectricityRates: map[string]ElectricityRate{
			"Maharashtra":      {Commercial: 11.50, Residential: 8.50},
			"Delhi":            {Commercial: 8.50, Residential: 7.00},
			"Tamil Nadu":       {Commercial: 9.00, Residential: 6.00},
			"Karnataka":        {Commercial: 10.00, Residential: 7.50},
			"Gujarat":          {Commercial: 8.00, Residential: 6.50},
			"Rajasthan":        {Commercial: 9.50, Residential: 7.00},
			"Uttar Pradesh":    {Commercial: 9.00, Residential: 7.00},
			"West Bengal":      {Commercial: 9.50, Residential: 7.50},
			"Telangana":        {Commercial: 10.00, Residential: 7.00},
			"Kerala":           {Commercial: 8.50, Residential: 6.50},
			"Punjab":           {Commercial: 8.00, Residential: 6.50},
			"Haryana":          {Commercial: 9.00, Residential: 7.50},
			"Madhya Pradesh":   {Commercial: 9.00, Residential: 7.00},
			"Andhra Pradesh":   {Commercial: 9.50, Residential: 7.00},
			"Odisha":           {Commercial: 8.50, Residential: 6.50},
			"National Average": {Commercial: 9.50, Residential: 7.50},
		},
		SoilConductivity: map[string]float64{
			"Alluvial Plains": 2.2,
			"Black Soil":      1.8,
			"Red Soil":        1.6,
			"Laterite":        1.4,
			"Sandy":           2.5,
			"Rocky/Hard":      3.0,
		},
		CapitalCostPerKW: map[string]float64{
			"Hot-Dry":    18000,
			"Warm-Humid": 22000,
			"Composite":  20000,
			"Temperate":  21000,
			"Cold":       25000,
		},
		BoreholeCostPerMeter: 900,
	}
}
