package model

import "github.com/sattva-energy/geotabs/internal/tables"

// ThermalModel holds sized loads and capacity.
type ThermalModel struct {
	LoadKW     float64 `json:"load_kW"`
	CapacityKW float64 `json:"capacity_kW"`
	CLRatio    float64 `json:"c_l_ratio"`
}

// GroundLoop holds the borehole field sizing.
type GroundLoop struct {
	LoopLengthM     float64 `json:"loop_length_m"`
	BoreholeCount   int     `json:"borehole_count"`
	LandAreaM2      float64 `json:"land_area_m2"`
	WattsPerMeter   float64 `json:"watts_per_meter"`
	BoreholeCostINR float64 `json:"borehole_cost_INR"`
}

// Energy holds annual consumption figures for the GSHP system and the
// conventional baseline it displaces.
type Energy struct {
	AnnualKWh       float64 `json:"annual_kWh"`
	BaselineKWh     float64 `json:"baseline_kWh"`
	SavingsKWh      float64 `json:"savings_kWh"`
	OperatingHours  float64 `json:"operating_hours"`
	EffectiveHours  float64 `json:"effective_hours"`
	DiversityFactor float64 `json:"diversity_factor"`
}

// CapitalBreakdown itemizes the capital cost estimate.
type CapitalBreakdown struct {
	HeatPump        float64 `json:"heat_pump"`
	GroundLoop      float64 `json:"ground_loop"`
	TABSIntegration float64 `json:"tabs_integration"`
	Controls        float64 `json:"controls"`
}

// Economics holds tariff-based running costs, capital cost and payback.
type Economics struct {
	ElectricityRate      float64          `json:"electricity_rate"`
	GeotabsCostINR       float64          `json:"geotabs_cost_INR"`
	BaselineCostINR      float64          `json:"baseline_cost_INR"`
	AnnualSavingsINR     float64          `json:"annual_savings_INR"`
	CapitalCostINR       float64          `json:"capital_cost_INR"`
	CapitalCostBreakdown CapitalBreakdown `json:"capital_cost_breakdown"`
	PaybackYears         float64          `json:"payback_years"`
}

// CO2 holds grid-emission figures in tonnes per year. All three fields
// are rounded independently, so SavingsTonnes is not guaranteed to equal
// BaselineTonnes - GeotabsTonnes to the last digit.
type CO2 struct {
	GeotabsTonnes  float64 `json:"geotabs_tonnes"`
	BaselineTonnes float64 `json:"baseline_tonnes"`
	SavingsTonnes  float64 `json:"savings_tonnes"`
}

// Scores holds the five feasibility sub-scores, each in a fixed 0-3 band.
type Scores struct {
	Load     int `json:"load"`
	Capacity int `json:"capacity"`
	Energy   int `json:"energy"`
	Climate  int `json:"climate"`
	Economic int `json:"economic"`
}

// Total sums all five sub-scores (0-15).
func (s Scores) Total() int {
	return s.Load + s.Capacity + s.Energy + s.Climate + s.Economic
}

// Result is the full feasibility report for one calculation.
type Result struct {
	Inputs           NormalizedInputs   `json:"inputs"`
	Model            ThermalModel       `json:"model"`
	GroundLoop       GroundLoop         `json:"ground_loop"`
	Energy           Energy             `json:"energy"`
	Economics        Economics          `json:"economics"`
	CO2              CO2                `json:"co2"`
	CO2SavingsTonnes float64            `json:"co2_savings_tonnes"`
	ClimateData      tables.ClimateZone `json:"climate_data"`
	Scores           Scores             `json:"scores"`
	TotalScore       int                `json:"total_score"`
	WeightedScore    float64            `json:"weighted_score"`
	Feasibility      string             `json:"feasibility_recommendation"`
}
