package engine

import "github.com/sattva-energy/geotabs/internal/model"

const (
	// Capital cost factors (Rs). The climate-indexed cost per kW covers
	// the whole installation; the heat pump itself is a 30% share of it.
	heatPumpShare     = 0.30
	tabsCostPerM2     = 1800.0
	controlsCostPerKW = 2000.0
	paybackNeverYears = 999 // sentinel: savings never recover the capital
)

// commercialTypes are billed at the commercial tariff; everything else
// (including unknown building types) is residential.
var commercialTypes = map[string]bool{
	"Office":       true,
	"Hospital":     true,
	"Hotel":        true,
	"IT/Tech Park": true,
}

// economics prices the annual energy figures at the state tariff and
// builds the capital cost estimate from its four components.
func (e *Engine) economics(n model.NormalizedInputs, en model.Energy, m model.ThermalModel, gl model.GroundLoop) model.Economics {
	rates := e.tables.Rate(n.State)
	rate := rates.Residential
	if commercialTypes[n.BuildingType] {
		rate = rates.Commercial
	}

	geotabsCost := en.AnnualKWh * rate
	baselineCost := en.BaselineKWh * rate
	annualSavings := en.SavingsKWh * rate

	heatPumpCost := m.CapacityKW * e.tables.CapitalCost(n.Climate) * heatPumpShare
	groundLoopCost := gl.BoreholeCostINR
	tabsCost := n.BuildingArea * tabsCostPerM2
	controlsCost := m.CapacityKW * controlsCostPerKW
	capitalCost := heatPumpCost + groundLoopCost + tabsCost + controlsCost

	payback := float64(paybackNeverYears)
	if annualSavings > 0 {
		payback = capitalCost / annualSavings
	}

	return model.Economics{
		ElectricityRate:  rate,
		GeotabsCostINR:   round2(geotabsCost),
		BaselineCostINR:  round2(baselineCost),
		AnnualSavingsINR: round2(annualSavings),
		CapitalCostINR:   round2(capitalCost),
		CapitalCostBreakdown: model.CapitalBreakdown{
			HeatPump:        round2(heatPumpCost),
			GroundLoop:      round2(groundLoopCost),
			TABSIntegration: round2(tabsCost),
			Controls:        round2(controlsCost),
		},
		PaybackYears: round1(payback),
	}
}
