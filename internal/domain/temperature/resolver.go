package temperature

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/yanqian/calorie-advisor/pkg/metrics"
)

// TemperatureField is the rule-file key holding the current temperature text.
const TemperatureField = "temperature"

const pageAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Resolver turns a location into a temperature outcome.
type Resolver interface {
	Resolve(ctx context.Context, loc Location) Outcome
}

// PageFetcher retrieves the raw markup behind a URL.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, headers http.Header) (string, error)
}

// FieldExtractor pulls named text fragments out of markup. Fields whose rule
// matches nothing are absent from the returned map.
type FieldExtractor interface {
	Extract(markup string) (map[string]string, error)
}

// Config wires the resolver to the weather site.
type Config struct {
	BaseURL string
}

type resolver struct {
	baseURL   string
	fetcher   PageFetcher
	extractor FieldExtractor
	logger    *slog.Logger
}

// NewResolver builds a resolver that performs exactly one fetch per call.
func NewResolver(cfg Config, fetcher PageFetcher, extractor FieldExtractor, logger *slog.Logger) Resolver {
	return &resolver{
		baseURL:   strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		fetcher:   fetcher,
		extractor: extractor,
		logger:    logger.With("component", "temperature.resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, loc Location) Outcome {
	out := r.resolve(ctx, loc)
	if reading, ok := out.Reading(); ok {
		metrics.TemperatureResolutions.WithLabelValues("ok").Inc()
		r.logger.Info("temperature resolved", "url", reading.SourceURL, "celsius", reading.Celsius)
		return out
	}
	failure, _ := out.Failure()
	metrics.TemperatureResolutions.WithLabelValues(string(failure.Kind)).Inc()
	r.logger.Warn("temperature unavailable", "country", loc.Country(), "city", loc.City(), "kind", failure.Kind, "detail", failure.Detail)
	return out
}

func (r *resolver) resolve(ctx context.Context, loc Location) Outcome {
	url := r.pageURL(loc)

	markup, err := r.fetcher.Fetch(ctx, url, http.Header{"Accept": []string{pageAccept}})
	if err != nil {
		return Failed(NetworkError, fmt.Sprintf("error during HTTP request: %v", err))
	}

	fields, err := r.extractor.Extract(markup)
	if err != nil {
		return Failed(ParseError, fmt.Sprintf("extract fields: %v", err))
	}
	raw, ok := fields[TemperatureField]
	if !ok {
		return Failed(MissingElementError, "temperature element not found")
	}

	celsius, err := parseTemperature(raw)
	if err != nil {
		return Failed(ParseError, err.Error())
	}
	return Succeeded(Reading{Celsius: celsius, SourceURL: url})
}

func (r *resolver) pageURL(loc Location) string {
	return r.baseURL + "/" + loc.Country() + "/" + loc.City()
}

// parseTemperature reads the numeric prefix of the first token, so "5 °C"
// and "5°C" both yield 5.
func parseTemperature(text string) (float64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, fmt.Errorf("temperature text is empty")
	}
	token := strings.ReplaceAll(fields[0], "−", "-")
	end := strings.IndexFunc(token, func(r rune) bool {
		return !strings.ContainsRune("+-.0123456789", r)
	})
	if end >= 0 {
		token = token[:end]
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("parse temperature %q: %w", fields[0], err)
	}
	return v, nil
}
