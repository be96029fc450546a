// Package engine implements the GeoTABS feasibility calculation
// pipeline: input normalization, validation, thermal and ground-loop
// sizing, energy and economic analysis, CO2 estimation, and feasibility
// scoring. The pipeline is a pure computation over the reference tables;
// an Engine is safe for concurrent use.
package engine

import (
	"github.com/sattva-energy/geotabs/internal/config"
	"github.com/sattva-energy/geotabs/internal/model"
	"github.com/sattva-energy/geotabs/internal/tables"
)

// Feasibility labels, assigned from the total score.
const (
	FeasibilityHigh        = "Highly Feasible"
	FeasibilityConditional = "Conditionally Feasible"
	FeasibilityNotAdvised  = "Not Recommended"
)

// Engine runs the calculation pipeline against one reference data set.
type Engine struct {
	tables tables.Tables
	cfg    config.EngineConfig
}

// New creates an Engine over the given reference tables and defaults.
func New(t tables.Tables, cfg config.EngineConfig) *Engine {
	return &Engine{tables: t, cfg: cfg}
}

// Run executes the full pipeline for one input record. The only error
// it returns is a *ValidationError; every downstream stage degrades to
// defaults instead of failing.
func (e *Engine) Run(in model.Inputs) (*model.Result, error) {
	n := e.normalize(in)

	if err := validate(n); err != nil {
		return nil, err
	}

	// Each stage consumes the prior stage's rounded output, so figures
	// compose exactly as they appear in the report.
	m := e.thermalModel(n)
	gl := e.groundLoop(n, m.CapacityKW)
	en := e.energyEstimate(n, m)
	eco := e.economics(n, en, m, gl)

	co2 := model.CO2{
		GeotabsTonnes:  e.co2Tonnes(en.AnnualKWh),
		BaselineTonnes: e.co2Tonnes(en.BaselineKWh),
		SavingsTonnes:  e.co2Tonnes(en.SavingsKWh),
	}

	sc := e.scores(n, m, en, eco)
	total := sc.Total()

	return &model.Result{
		Inputs:           n,
		Model:            m,
		GroundLoop:       gl,
		Energy:           en,
		Economics:        eco,
		CO2:              co2,
		CO2SavingsTonnes: co2.SavingsTonnes,
		ClimateData:      e.tables.Zone(n.Climate),
		Scores:           sc,
		TotalScore:       total,
		WeightedScore:    round3(weightedScore(sc)),
		Feasibility:      feasibility(total),
	}, nil
}

// feasibility maps a total score (0-15) to a recommendation label.
func feasibility(total int) string {
	switch {
	case total >= 12:
		return FeasibilityHigh
	case total >= 8:
		return FeasibilityConditional
	default:
		return FeasibilityNotAdvised
	}
}
