package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sattva-energy/geotabs/internal/model"
)

func scoreFor(t *testing.T, n model.NormalizedInputs, m model.ThermalModel, en model.Energy, eco model.Economics) model.Scores {
	t.Helper()
	return testEngine().scores(n, m, en, eco)
}

func TestScores_LoadBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		area float64
		want int
	}{
		{100, 0},
		{499, 0},
		{500, 1},
		{1000, 2},
		{1499, 2},
		{1500, 3},
		{100000, 3},
	}
	for _, tc := range tests {
		s := scoreFor(t, model.NormalizedInputs{BuildingArea: tc.area}, model.ThermalModel{}, model.Energy{}, model.Economics{})
		assert.Equal(t, tc.want, s.Load, "area %v", tc.area)
	}
}

func TestScores_CapacityBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  int
	}{
		{1.2, 3},
		{1.1, 3},
		{1.09, 2},
		{0.9, 2},
		{0.89, 1},
		{0.1, 1},
	}
	for _, tc := range tests {
		s := scoreFor(t, model.NormalizedInputs{}, model.ThermalModel{CLRatio: tc.ratio}, model.Energy{}, model.Economics{})
		assert.Equal(t, tc.want, s.Capacity, "ratio %v", tc.ratio)
	}
}

// The band edges are strict less-than: exactly 20000 kWh already counts
// as the next band up.
func TestScores_EnergyBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		savings float64
		want    int
	}{
		{-100, 0},
		{0, 0},
		{0.01, 1},
		{19999.99, 1},
		{20000, 2},
		{49999.99, 2},
		{50000, 3},
		{1e6, 3},
	}
	for _, tc := range tests {
		s := scoreFor(t, model.NormalizedInputs{}, model.ThermalModel{}, model.Energy{SavingsKWh: tc.savings}, model.Economics{})
		assert.Equal(t, tc.want, s.Energy, "savings %v", tc.savings)
	}
}

func TestScores_ClimateSuitability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		climate string
		want    int
	}{
		{"Hot-Dry", 3},
		{"Warm-Humid", 3},
		{"Composite", 3},
		{"Temperate", 2},
		{"Cold", 2},
		{"Unknown", 3}, // Composite fallback
	}
	for _, tc := range tests {
		s := scoreFor(t, model.NormalizedInputs{Climate: tc.climate}, model.ThermalModel{}, model.Energy{}, model.Economics{})
		assert.Equal(t, tc.want, s.Climate, "climate %v", tc.climate)
	}
}

func TestScores_EconomicBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		payback float64
		want    int
	}{
		{2, 3},
		{6.9, 3},
		{7, 2},
		{11.9, 2},
		{12, 1},
		{17.9, 1},
		{18, 0},
		{999, 0},
	}
	for _, tc := range tests {
		s := scoreFor(t, model.NormalizedInputs{}, model.ThermalModel{}, model.Energy{}, model.Economics{PaybackYears: tc.payback})
		assert.Equal(t, tc.want, s.Economic, "payback %v", tc.payback)
	}
}

// The weighted aggregate deliberately leaves the economic sub-score out.
func TestWeightedScore_ExcludesEconomic(t *testing.T) {
	t.Parallel()

	base := model.Scores{Load: 2, Capacity: 3, Energy: 1, Climate: 3, Economic: 0}
	bumped := base
	bumped.Economic = 3

	assert.Equal(t, weightedScore(base), weightedScore(bumped))
	assert.InDelta(t, 2.15, weightedScore(base), 1e-9)
}
