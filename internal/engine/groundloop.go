package engine

import (
	"math"

	"github.com/sattva-energy/geotabs/internal/model"
)

const (
	// Empirical heat-exchange factor: W per meter of loop per unit of
	// soil conductivity. Typical Indian soils land at 15-20 W/m.
	heatExchangeFactor = 8.0
	boreholeDepthM     = 100.0
	landPerBoreholeM2  = 25.0 // 5m x 5m spacing
)

// groundLoop sizes the borehole field for the installed capacity. There
// is always at least one borehole, however small the capacity.
func (e *Engine) groundLoop(n model.NormalizedInputs, capacityKW float64) model.GroundLoop {
	wattsPerMeter := n.SoilConductivity * heatExchangeFactor

	// Soil conductivity rides the lenient path and is never validated;
	// the floor keeps a zero or negative value from blowing up the loop
	// length the way the energy stage floors COP.
	loopLengthM := capacityKW * 1000 / max(wattsPerMeter, 0.1)

	boreholes := int(math.Max(1, math.Round(loopLengthM/boreholeDepthM)))

	return model.GroundLoop{
		LoopLengthM:     round0(loopLengthM),
		BoreholeCount:   boreholes,
		LandAreaM2:      round0(float64(boreholes) * landPerBoreholeM2),
		WattsPerMeter:   round1(wattsPerMeter),
		BoreholeCostINR: round0(float64(boreholes) * boreholeDepthM * e.tables.BoreholeCostPerMeter),
	}
}
