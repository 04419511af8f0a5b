package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/calorie-advisor/internal/domain/calorie"
	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

func TestRunPrintsEstimate(t *testing.T) {
	celsius := 5.0
	svc := &stubService{resp: calorie.Response{
		BMR: 1695.67, TemperatureFactor: 0.8, DailyIntake: 1356.53,
		Temperature: &celsius, SourceURL: "https://weather.test/lebanon/beirut",
	}}
	var out bytes.Buffer

	err := run(context.Background(), svc, validRequest(), &out)
	require.NoError(t, err)
	require.Equal(t, ">> Temperature: 5 °C (https://weather.test/lebanon/beirut)\n>> BMR: 1695.67 kcal, factor 0.8\n>> Daily Calorie Intake: 1356.53 kcal\n", out.String())
}

func TestRunReportsMissingTemperature(t *testing.T) {
	svc := &stubService{resp: calorie.Response{BMR: 1405.33, TemperatureFactor: 1, DailyIntake: 1405.33, TemperatureError: "temperature element not found"}}
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), svc, validRequest(), &out))
	require.Contains(t, out.String(), "-- Temperature unavailable: temperature element not found")
	require.Contains(t, out.String(), ">> Daily Calorie Intake: 1405.33 kcal")
}

func TestRunReturnsComputationError(t *testing.T) {
	svc := &stubService{err: apperrors.Wrap(apperrors.CodeComputation, "invalid gender", nil)}
	var out bytes.Buffer

	req := validRequest()
	req.Gender = "other"
	err := run(context.Background(), svc, req, &out)
	require.True(t, apperrors.IsCode(err, apperrors.CodeComputation))
	require.Empty(t, out.String())
}

func TestRunRejectsUnsafeInputBeforeAdvising(t *testing.T) {
	svc := &stubService{}
	var out bytes.Buffer

	c := cli{Gender: "male", Weight: 70, Height: 175, Age: 5, Country: "../admin", City: "x?debug=1"}
	err := run(context.Background(), svc, c.request(), &out)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	require.Contains(t, err.Error(), "country must satisfy place")
	require.Contains(t, err.Error(), "city must satisfy place")
	require.Contains(t, err.Error(), "age must satisfy gte=18")
	require.Zero(t, svc.adviseCalls)
	require.Empty(t, out.String())
}

func TestCLIRequest(t *testing.T) {
	c := cli{Gender: "female", Weight: 60, Height: 165, Age: 25, Country: "lebanon", City: "beirut"}
	require.Equal(t, calorie.Request{Gender: "female", Weight: 60, Height: 165, Age: 25, Country: "lebanon", City: "beirut"}, c.request())
}

func validRequest() calorie.Request {
	return calorie.Request{Gender: "male", Weight: 70, Height: 175, Age: 30, Country: "lebanon", City: "beirut"}
}

type stubService struct {
	resp        calorie.Response
	err         error
	adviseCalls int
}

func (s *stubService) Advise(ctx context.Context, req calorie.Request) (calorie.Response, error) {
	s.adviseCalls++
	return s.resp, s.err
}

func (s *stubService) ResolveTemperature(ctx context.Context, country, city string) (temperature.Outcome, error) {
	return temperature.Outcome{}, nil
}
