package engine

import "github.com/sattva-energy/geotabs/internal/model"

// Weights for the weighted aggregate. The economic sub-score counts
// toward the total but not the weighted score; that contract predates
// the economic score and downstream consumers depend on it.
const (
	weightLoad     = 0.25
	weightCapacity = 0.25
	weightEnergy   = 0.30
	weightClimate  = 0.20
)

// scores derives the five feasibility sub-scores, each in a fixed band.
func (e *Engine) scores(n model.NormalizedInputs, m model.ThermalModel, en model.Energy, eco model.Economics) model.Scores {
	var s model.Scores

	// Larger floor plates amortize drilling cost better.
	s.Load = clamp(int(n.BuildingArea/500), 0, 3)

	switch {
	case m.CLRatio >= 1.1:
		s.Capacity = 3
	case m.CLRatio >= 0.9:
		s.Capacity = 2
	default:
		s.Capacity = 1
	}

	switch {
	case en.SavingsKWh <= 0:
		s.Energy = 0
	case en.SavingsKWh < 20000:
		s.Energy = 1
	case en.SavingsKWh < 50000:
		s.Energy = 2
	default:
		s.Energy = 3
	}

	s.Climate = e.tables.Zone(n.Climate).SuitabilityScore

	switch {
	case eco.PaybackYears < 7:
		s.Economic = 3
	case eco.PaybackYears < 12:
		s.Economic = 2
	case eco.PaybackYears < 18:
		s.Economic = 1
	default:
		s.Economic = 0
	}

	return s
}

func weightedScore(s model.Scores) float64 {
	return weightLoad*float64(s.Load) +
		weightCapacity*float64(s.Capacity) +
		weightEnergy*float64(s.Energy) +
		weightClimate*float64(s.Climate)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
