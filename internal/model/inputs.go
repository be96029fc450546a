// Package model defines the wire-level input and result records for a
// feasibility calculation. JSON tags are the API contract and must not
// change shape between releases.
package model

// Inputs is the caller-supplied parameter set for one calculation.
// Numeric fields that distinguish "absent" from "zero" are pointers:
// a missing COP falls back to the configured default, while an explicit
// zero is a validation error.
type Inputs struct {
	BuildingArea     float64  `json:"buildingArea_m2"`
	BuildingType     string   `json:"buildingType,omitempty"`
	BuildingTier     string   `json:"buildingTier,omitempty"`
	PeakCooling      *float64 `json:"peakCooling_kW,omitempty"`
	GSHeatPumpCOP    *float64 `json:"gsHeatPumpCOP,omitempty"`
	BaselineCOP      *float64 `json:"baseline_COP,omitempty"`
	OversizeFactor   *float64 `json:"oversize_factor,omitempty"`
	Climate          string   `json:"climate,omitempty"`
	State            string   `json:"state,omitempty"`
	SoilConductivity *float64 `json:"soilConductivity_WpmK,omitempty"`
}

// NormalizedInputs is Inputs after defaults have been merged in and the
// peak cooling load resolved. It is echoed verbatim in the result.
type NormalizedInputs struct {
	BuildingArea      float64 `json:"buildingArea_m2"`
	BuildingType      string  `json:"buildingType"`
	BuildingTier      string  `json:"buildingTier"`
	PeakCooling       float64 `json:"peakCooling_kW"`
	PeakCoolingSource string  `json:"peakCooling_source"`
	GSHeatPumpCOP     float64 `json:"gsHeatPumpCOP"`
	BaselineCOP       float64 `json:"baseline_COP"`
	OversizeFactor    float64 `json:"oversize_factor"`
	Climate           string  `json:"climate"`
	State             string  `json:"state"`
	SoilConductivity  float64 `json:"soilConductivity_WpmK"`
}
