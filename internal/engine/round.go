package engine

import "math"

// roundTo rounds half away from zero at the given number of decimals.
// Report figures are rounded at every stage boundary so that downstream
// stages compose exactly the values a reader sees.
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

func round0(x float64) float64 { return roundTo(x, 0) }
func round1(x float64) float64 { return roundTo(x, 1) }
func round2(x float64) float64 { return roundTo(x, 2) }
func round3(x float64) float64 { return roundTo(x, 3) }
