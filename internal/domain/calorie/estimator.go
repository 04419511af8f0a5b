package calorie

import (
	"math"

	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

const (
	coldLimitCelsius = 10.0
	hotLimitCelsius  = 25.0

	coldFactor     = 0.8
	moderateFactor = 1.0
	hotFactor      = 1.2
)

// Validate rejects profiles the Harris–Benedict equations cannot handle.
func (p BodyProfile) Validate() error {
	if p.Gender != Male && p.Gender != Female {
		return computationError("invalid gender")
	}
	if !positive(p.WeightKg) {
		return computationError("weight must be positive")
	}
	if !positive(p.HeightCm) {
		return computationError("height must be positive")
	}
	if p.AgeYears <= 0 {
		return computationError("age must be positive")
	}
	return nil
}

// positive is false for NaN and infinities.
func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func computationError(msg string) error {
	return apperrors.Wrap(string(temperature.ComputationError), msg, nil)
}

// BMR computes the basal metabolic rate with the Harris–Benedict equations.
func BMR(p BodyProfile) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	w, h, a := p.WeightKg, p.HeightCm, float64(p.AgeYears)
	if p.Gender == Male {
		return 88.362 + 13.397*w + 4.799*h - 5.677*a, nil
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*a, nil
}

// TemperatureFactor maps a temperature to its intake multiplier. A nil
// temperature assumes moderate conditions. Both limits belong to the lower band.
func TemperatureFactor(celsius *float64) float64 {
	switch {
	case celsius == nil:
		return moderateFactor
	case *celsius <= coldLimitCelsius:
		return coldFactor
	case *celsius <= hotLimitCelsius:
		return moderateFactor
	default:
		return hotFactor
	}
}

// Estimate scales BMR by the temperature factor. It does no rounding.
func Estimate(p BodyProfile, celsius *float64) (Result, error) {
	bmr, err := BMR(p)
	if err != nil {
		return Result{}, err
	}
	factor := TemperatureFactor(celsius)
	return Result{
		BMR:               bmr,
		TemperatureFactor: factor,
		DailyIntake:       bmr * factor,
	}, nil
}
