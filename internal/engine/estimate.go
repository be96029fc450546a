package engine

// estimatePeakCooling derives a peak cooling load (kW) from floor area
// and the cooling intensity table. Unknown building types and tiers
// degrade to the 0.15 kW/m2 fallback rather than failing.
func (e *Engine) estimatePeakCooling(buildingType, tier string, areaM2 float64) float64 {
	return areaM2 * e.tables.Intensity(buildingType, tier)
}
