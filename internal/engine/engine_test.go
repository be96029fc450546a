package engine

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sattva-energy/geotabs/internal/config"
	"github.com/sattva-energy/geotabs/internal/model"
	"github.com/sattva-energy/geotabs/internal/tables"
)

func testEngine() *Engine {
	return New(tables.Default(), config.DefaultEngine())
}

func ptr(v float64) *float64 { return &v }

// Worked example: 1000 m2 Tier-2 office in Delhi, composite zone, peak
// cooling estimated.
func TestRun_DelhiOffice(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	res, err := eng.Run(model.Inputs{
		BuildingArea: 1000,
		BuildingType: "Office",
		BuildingTier: "Tier-2",
		Climate:      "Composite",
		State:        "Delhi",
	})
	require.NoError(t, err)

	// Estimated peak: 1000 m2 x 0.14 kW/m2.
	assert.Equal(t, 140.0, res.Inputs.PeakCooling)
	assert.Equal(t, SourceEstimated, res.Inputs.PeakCoolingSource)

	assert.Equal(t, 140.0, res.Model.LoadKW)
	assert.Equal(t, 168.0, res.Model.CapacityKW)
	assert.Equal(t, 1.2, res.Model.CLRatio)

	// Soil 2.0 -> 16 W/m; 168 kW -> 10500 m -> 105 boreholes.
	assert.Equal(t, 10500.0, res.GroundLoop.LoopLengthM)
	assert.Equal(t, 105, res.GroundLoop.BoreholeCount)
	assert.Equal(t, 2625.0, res.GroundLoop.LandAreaM2)
	assert.Equal(t, 16.0, res.GroundLoop.WattsPerMeter)
	assert.Equal(t, 9450000.0, res.GroundLoop.BoreholeCostINR)

	// Composite: 9h x 30 x 6 cooling + 6h x 30 x 3 heating = 2160 h,
	// 1512 effective at diversity 0.7.
	assert.Equal(t, 2160.0, res.Energy.OperatingHours)
	assert.Equal(t, 1512.0, res.Energy.EffectiveHours)
	assert.Equal(t, 0.7, res.Energy.DiversityFactor)
	assert.Equal(t, 52920.0, res.Energy.AnnualKWh)
	assert.Equal(t, 70560.0, res.Energy.BaselineKWh)
	assert.Equal(t, 17640.0, res.Energy.SavingsKWh)

	// Delhi commercial tariff.
	assert.Equal(t, 8.50, res.Economics.ElectricityRate)
	assert.Equal(t, 449820.0, res.Economics.GeotabsCostINR)
	assert.Equal(t, 599760.0, res.Economics.BaselineCostINR)
	assert.Equal(t, 149940.0, res.Economics.AnnualSavingsINR)
	assert.Equal(t, 1008000.0, res.Economics.CapitalCostBreakdown.HeatPump)
	assert.Equal(t, 9450000.0, res.Economics.CapitalCostBreakdown.GroundLoop)
	assert.Equal(t, 1800000.0, res.Economics.CapitalCostBreakdown.TABSIntegration)
	assert.Equal(t, 336000.0, res.Economics.CapitalCostBreakdown.Controls)
	assert.Equal(t, 12594000.0, res.Economics.CapitalCostINR)
	assert.Equal(t, 84.0, res.Economics.PaybackYears)

	assert.InDelta(t, 43.394, res.CO2.GeotabsTonnes, 1e-9)
	assert.InDelta(t, 57.859, res.CO2.BaselineTonnes, 1e-9)
	assert.InDelta(t, 14.465, res.CO2.SavingsTonnes, 1e-9)
	assert.Equal(t, res.CO2.SavingsTonnes, res.CO2SavingsTonnes)

	assert.Equal(t, model.Scores{Load: 2, Capacity: 3, Energy: 1, Climate: 3, Economic: 0}, res.Scores)
	assert.Equal(t, 9, res.TotalScore)
	assert.Equal(t, 2.15, res.WeightedScore)
	assert.Equal(t, FeasibilityConditional, res.Feasibility)

	assert.Equal(t, "Delhi, Punjab, Haryana, UP", res.ClimateData.Examples)
}

func TestRun_Validation(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	tests := []struct {
		name    string
		in      model.Inputs
		wantMsg string
	}{
		{
			name:    "zero area",
			in:      model.Inputs{BuildingArea: 0},
			wantMsg: "Invalid building area (buildingArea_m2)",
		},
		{
			name:    "negative area",
			in:      model.Inputs{BuildingArea: -5},
			wantMsg: "Invalid building area (buildingArea_m2)",
		},
		{
			name:    "zero COP",
			in:      model.Inputs{BuildingArea: 1000, GSHeatPumpCOP: ptr(0)},
			wantMsg: "gsHeatPumpCOP must be > 0",
		},
		{
			name:    "negative COP",
			in:      model.Inputs{BuildingArea: 1000, GSHeatPumpCOP: ptr(-2)},
			wantMsg: "gsHeatPumpCOP must be > 0",
		},
		{
			name:    "negative peak cooling",
			in:      model.Inputs{BuildingArea: 1000, PeakCooling: ptr(-10)},
			wantMsg: "peakCooling_kW must be > 0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Run(tc.in)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

// A zero peak cooling load is treated as absent, not invalid.
func TestRun_ZeroPeakCoolingIsEstimated(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	res, err := eng.Run(model.Inputs{BuildingArea: 1000, PeakCooling: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, SourceEstimated, res.Inputs.PeakCoolingSource)
	assert.Equal(t, 140.0, res.Inputs.PeakCooling)
}

func TestRun_UserSuppliedPeakCooling(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	res, err := eng.Run(model.Inputs{BuildingArea: 1000, PeakCooling: ptr(123.456)})
	require.NoError(t, err)
	assert.Equal(t, SourceUserDefined, res.Inputs.PeakCoolingSource)
	assert.Equal(t, 123.456, res.Inputs.PeakCooling)
	assert.Equal(t, 123.456, res.Model.LoadKW)
}

// Any positive-area input must complete and land in the score range.
func TestRun_ScoreRange(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	areas := []float64{1, 250, 750, 2000, 50000}
	types := []string{"Office", "Residential", "Hospital", "Warehouse", ""}
	climates := []string{"Hot-Dry", "Warm-Humid", "Composite", "Temperate", "Cold", "Alpine", ""}
	states := []string{"Delhi", "Kerala", "Atlantis", ""}

	for _, area := range areas {
		for _, btype := range types {
			for _, climate := range climates {
				for _, state := range states {
					in := model.Inputs{
						BuildingArea: area,
						BuildingType: btype,
						Climate:      climate,
						State:        state,
					}
					res, err := eng.Run(in)
					require.NoError(t, err, "area=%v type=%q climate=%q state=%q", area, btype, climate, state)

					assert.GreaterOrEqual(t, res.TotalScore, 0)
					assert.LessOrEqual(t, res.TotalScore, 15)
					assert.GreaterOrEqual(t, res.GroundLoop.BoreholeCount, 1)
					assert.Equal(t, res.TotalScore, res.Scores.Total())
				}
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	in := model.Inputs{
		BuildingArea: 1234.5,
		BuildingType: "Hotel",
		Climate:      "Warm-Humid",
		State:        "Kerala",
	}

	first, err := eng.Run(in)
	require.NoError(t, err)
	second, err := eng.Run(in)
	require.NoError(t, err)

	require.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Identical COPs mean zero savings: the payback sentinel kicks in and
// the economic score bottoms out.
func TestRun_PaybackSentinel(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	res, err := eng.Run(model.Inputs{
		BuildingArea:  1000,
		GSHeatPumpCOP: ptr(3.0),
		BaselineCOP:   ptr(3.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Energy.SavingsKWh)
	assert.Equal(t, 0.0, res.Economics.AnnualSavingsINR)
	assert.Equal(t, 999.0, res.Economics.PaybackYears)
	assert.Equal(t, 0, res.Scores.Economic)
	assert.Equal(t, 0, res.Scores.Energy)
}

func TestRun_UnknownClimateFallsBackToComposite(t *testing.T) {
	t.Parallel()
	eng := testEngine()

	res, err := eng.Run(model.Inputs{BuildingArea: 1000, Climate: "Himalayan"})
	require.NoError(t, err)

	// The raw value is echoed in the inputs; lookups use Composite.
	assert.Equal(t, "Himalayan", res.Inputs.Climate)
	assert.Equal(t, tables.Default().ClimateZones["Composite"], res.ClimateData)
}

func TestFeasibilityLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int
		want  string
	}{
		{15, FeasibilityHigh},
		{12, FeasibilityHigh},
		{11, FeasibilityConditional},
		{8, FeasibilityConditional},
		{7, FeasibilityNotAdvised},
		{0, FeasibilityNotAdvised},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("total=%d", tc.total), func(t *testing.T) {
			assert.Equal(t, tc.want, feasibility(tc.total))
		})
	}
}
