package engine

// co2Tonnes converts annual kWh to tonnes of CO2 using the configured
// grid emission factor (kg/kWh). Each figure is rounded on its own, so
// the savings figure is not a subtraction of the other two.
func (e *Engine) co2Tonnes(kWh float64) float64 {
	return round3(kWh * e.cfg.EmissionFactor / 1000.0)
}
