package engine

import "github.com/sattva-energy/geotabs/internal/model"

// thermalModel sizes installed capacity from the peak load and the
// oversize factor. The epsilon floor keeps the ratio finite when the
// load rounds to zero.
func (e *Engine) thermalModel(n model.NormalizedInputs) model.ThermalModel {
	loadKW := n.PeakCooling
	capacityKW := loadKW * n.OversizeFactor
	ratio := capacityKW / max(loadKW, 1e-6)

	return model.ThermalModel{
		LoadKW:     round3(loadKW),
		CapacityKW: round3(capacityKW),
		CLRatio:    round3(ratio),
	}
}
