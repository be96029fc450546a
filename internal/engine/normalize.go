package engine

import "github.com/sattva-energy/geotabs/internal/model"

// Provenance tags for the peak cooling load.
const (
	SourceEstimated   = "Estimated from Indian building standards"
	SourceUserDefined = "User defined"
)

// normalize merges caller inputs over the configured defaults. Supplied
// values win whenever present and non-empty; a missing or zero peak
// cooling load is estimated from building standards. Supplied values are
// kept verbatim even when invalid, so validation sees what the caller
// sent rather than a patched-up record.
func (e *Engine) normalize(in model.Inputs) model.NormalizedInputs {
	d := e.cfg

	n := model.NormalizedInputs{
		BuildingArea:     in.BuildingArea,
		BuildingType:     orDefault(in.BuildingType, d.BuildingType),
		BuildingTier:     orDefault(in.BuildingTier, d.BuildingTier),
		Climate:          orDefault(in.Climate, d.Climate),
		State:            orDefault(in.State, d.State),
		GSHeatPumpCOP:    orDefaultF(in.GSHeatPumpCOP, d.GSHeatPumpCOP),
		BaselineCOP:      orDefaultF(in.BaselineCOP, d.BaselineCOP),
		OversizeFactor:   orDefaultF(in.OversizeFactor, d.OversizeFactor),
		SoilConductivity: orDefaultF(in.SoilConductivity, d.SoilConductivity),
	}

	if in.PeakCooling == nil || *in.PeakCooling == 0 {
		n.PeakCooling = round2(e.estimatePeakCooling(n.BuildingType, n.BuildingTier, n.BuildingArea))
		n.PeakCoolingSource = SourceEstimated
	} else {
		n.PeakCooling = *in.PeakCooling
		n.PeakCoolingSource = SourceUserDefined
	}

	return n
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func orDefaultF(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
