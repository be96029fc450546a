package engine

import "github.com/sattva-energy/geotabs/internal/model"

// energyEstimate computes annual consumption for the GSHP system and
// the baseline it replaces. Operating hours come from the climate
// zone's monthly profile, scaled by the diversity factor to reflect
// part-load operation; buildings rarely run at nameplate continuously.
func (e *Engine) energyEstimate(n model.NormalizedInputs, m model.ThermalModel) model.Energy {
	zone := e.tables.Zone(n.Climate)

	coolingHours := float64(zone.CoolingHoursPerDay * 30 * zone.CoolingMonths)
	heatingHours := float64(zone.HeatingHoursPerDay * 30 * zone.HeatingMonths)
	totalHours := coolingHours + heatingHours
	effectiveHours := totalHours * e.cfg.DiversityFactor

	// COP floors guard against pathological inputs that slipped past
	// the lenient path (baseline COP is never validated).
	annualKWh := m.LoadKW * effectiveHours / max(n.GSHeatPumpCOP, 0.1)
	baselineKWh := m.LoadKW * effectiveHours / max(n.BaselineCOP, 0.1)

	return model.Energy{
		AnnualKWh:       round2(annualKWh),
		BaselineKWh:     round2(baselineKWh),
		SavingsKWh:      round2(baselineKWh - annualKWh),
		OperatingHours:  round0(totalHours),
		EffectiveHours:  round0(effectiveHours),
		DiversityFactor: e.cfg.DiversityFactor,
	}
}
