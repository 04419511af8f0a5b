package calorie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

func TestTemperatureFactorBands(t *testing.T) {
	cases := []struct {
		name    string
		celsius *float64
		want    float64
	}{
		{name: "absent", celsius: nil, want: 1.0},
		{name: "freezing", celsius: ptr(-15), want: 0.8},
		{name: "cold limit inclusive", celsius: ptr(10), want: 0.8},
		{name: "just above cold limit", celsius: ptr(10.01), want: 1.0},
		{name: "mild", celsius: ptr(18), want: 1.0},
		{name: "hot limit inclusive", celsius: ptr(25), want: 1.0},
		{name: "just above hot limit", celsius: ptr(25.01), want: 1.2},
		{name: "hot", celsius: ptr(40), want: 1.2},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, TemperatureFactor(tc.celsius), tc.name)
	}
}

func TestEstimateMaleCold(t *testing.T) {
	res, err := Estimate(BodyProfile{Gender: Male, WeightKg: 70, HeightCm: 175, AgeYears: 30}, ptr(5))
	require.NoError(t, err)
	require.InDelta(t, 1695.667, res.BMR, 1e-9)
	require.Equal(t, 0.8, res.TemperatureFactor)
	require.InDelta(t, 1356.5336, res.DailyIntake, 1e-9)
	require.Equal(t, 1356.53, math.Round(res.DailyIntake*100)/100)
}

func TestEstimateFemaleWithoutTemperature(t *testing.T) {
	res, err := Estimate(BodyProfile{Gender: Female, WeightKg: 60, HeightCm: 165, AgeYears: 25}, nil)
	require.NoError(t, err)
	require.InDelta(t, 1405.333, res.BMR, 1e-9)
	require.Equal(t, 1.0, res.TemperatureFactor)
	require.InDelta(t, 1405.333, res.DailyIntake, 1e-9)
}

func TestEstimateHot(t *testing.T) {
	res, err := Estimate(BodyProfile{Gender: Female, WeightKg: 60, HeightCm: 165, AgeYears: 25}, ptr(31))
	require.NoError(t, err)
	require.InDelta(t, 1405.333*1.2, res.DailyIntake, 1e-9)
}

func TestEstimateIsDeterministic(t *testing.T) {
	profile := BodyProfile{Gender: Male, WeightKg: 82.5, HeightCm: 181, AgeYears: 41}
	first, err := Estimate(profile, ptr(12))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Estimate(profile, ptr(12))
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEstimateRejectsInvalidProfiles(t *testing.T) {
	cases := []struct {
		name    string
		profile BodyProfile
		message string
	}{
		{name: "other gender", profile: BodyProfile{Gender: "other", WeightKg: 70, HeightCm: 175, AgeYears: 30}, message: "invalid gender"},
		{name: "empty gender", profile: BodyProfile{WeightKg: 70, HeightCm: 175, AgeYears: 30}, message: "invalid gender"},
		{name: "zero weight", profile: BodyProfile{Gender: Male, HeightCm: 175, AgeYears: 30}, message: "weight must be positive"},
		{name: "negative height", profile: BodyProfile{Gender: Female, WeightKg: 60, HeightCm: -1, AgeYears: 30}, message: "height must be positive"},
		{name: "NaN weight", profile: BodyProfile{Gender: Male, WeightKg: math.NaN(), HeightCm: 175, AgeYears: 30}, message: "weight must be positive"},
		{name: "infinite weight", profile: BodyProfile{Gender: Male, WeightKg: math.Inf(1), HeightCm: 175, AgeYears: 30}, message: "weight must be positive"},
		{name: "NaN height", profile: BodyProfile{Gender: Female, WeightKg: 60, HeightCm: math.NaN(), AgeYears: 30}, message: "height must be positive"},
		{name: "infinite height", profile: BodyProfile{Gender: Female, WeightKg: 60, HeightCm: math.Inf(1), AgeYears: 30}, message: "height must be positive"},
		{name: "negative infinite height", profile: BodyProfile{Gender: Female, WeightKg: 60, HeightCm: math.Inf(-1), AgeYears: 30}, message: "height must be positive"},
		{name: "zero age", profile: BodyProfile{Gender: Female, WeightKg: 60, HeightCm: 160}, message: "age must be positive"},
	}

	for _, tc := range cases {
		_, err := Estimate(tc.profile, ptr(20))
		require.Error(t, err, tc.name)
		require.True(t, apperrors.IsCode(err, apperrors.CodeComputation), tc.name)
		require.EqualError(t, err, tc.message, tc.name)
	}
}

func TestParseGender(t *testing.T) {
	require.Equal(t, Male, ParseGender(" Male "))
	require.Equal(t, Female, ParseGender("FEMALE"))
	require.Equal(t, Gender("other"), ParseGender("Other"))
}

func ptr(v float64) *float64 {
	return &v
}
