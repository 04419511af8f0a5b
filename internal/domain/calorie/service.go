package calorie

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/yanqian/calorie-advisor/internal/domain/temperature"
	"github.com/yanqian/calorie-advisor/pkg/metrics"
	"github.com/yanqian/calorie-advisor/pkg/util"
)

// Service exposes temperature aware calorie estimates.
type Service interface {
	Advise(ctx context.Context, req Request) (Response, error)
	ResolveTemperature(ctx context.Context, country, city string) (temperature.Outcome, error)
}

type service struct {
	resolver temperature.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the calorie advisor domain.
func NewService(resolver temperature.Resolver, logger *slog.Logger) Service {
	return &service{
		resolver: resolver,
		logger:   logger.With("component", "calorie.service"),
		now:      util.NowUTC,
	}
}

// ResolveTemperature normalizes the location and resolves it. The error is
// only set for an unusable location; lookup failures live in the outcome.
func (s *service) ResolveTemperature(ctx context.Context, country, city string) (temperature.Outcome, error) {
	loc, err := temperature.NewLocation(country, city)
	if err != nil {
		return temperature.Outcome{}, err
	}
	return s.resolver.Resolve(ctx, loc), nil
}

// Advise estimates the daily intake. An unavailable temperature falls back to
// moderate conditions and is reported in TemperatureError.
func (s *service) Advise(ctx context.Context, req Request) (Response, error) {
	profile := BodyProfile{
		Gender:   ParseGender(req.Gender),
		WeightKg: req.Weight,
		HeightCm: req.Height,
		AgeYears: req.Age,
	}
	if err := profile.Validate(); err != nil {
		return Response{}, err
	}

	outcome, err := s.ResolveTemperature(ctx, req.Country, req.City)
	if err != nil {
		return Response{}, err
	}

	res := Response{Gender: string(profile.Gender)}
	celsius := outcome.Celsius()
	if reading, ok := outcome.Reading(); ok {
		res.SourceURL = reading.SourceURL
	}
	if failure, ok := outcome.Failure(); ok {
		res.TemperatureError = failure.Detail
		s.logger.Info("estimating without temperature", "kind", failure.Kind)
	}

	result, err := Estimate(profile, celsius)
	if err != nil {
		return Response{}, err
	}
	metrics.Estimates.WithLabelValues(strconv.FormatFloat(result.TemperatureFactor, 'f', 1, 64)).Inc()

	res.BMR = util.Round2(result.BMR)
	res.TemperatureFactor = result.TemperatureFactor
	res.DailyIntake = util.Round2(result.DailyIntake)
	res.Temperature = celsius
	res.ComputedAt = s.now()
	return res, nil
}
