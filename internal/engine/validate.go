package engine

import (
	"errors"

	"github.com/sattva-energy/geotabs/internal/model"
)

// ValidationError is the single domain error kind. It carries a
// caller-facing message and surfaces at the API boundary as a client
// error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// validate is the only strict gate in the pipeline: area, a supplied
// peak cooling load, and a supplied COP must be positive. Every other
// field is lenient and degrades to defaults downstream; callers rely on
// partial input working, so this asymmetry is deliberate contract.
//
// It runs on the normalized record: an omitted peak cooling load has
// already been replaced by an estimate here, so only caller-supplied
// negatives trip the peak cooling check.
func validate(n model.NormalizedInputs) error {
	if n.BuildingArea <= 0 {
		return &ValidationError{msg: "Invalid building area (buildingArea_m2)"}
	}
	if n.PeakCooling < 0 {
		return &ValidationError{msg: "peakCooling_kW must be > 0"}
	}
	if n.GSHeatPumpCOP <= 0 {
		return &ValidationError{msg: "gsHeatPumpCOP must be > 0"}
	}
	return nil
}
