package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calorie_advisor_page_fetch_total",
			Help: "Total weather page fetches by response status",
		},
		[]string{"status"},
	)

	PageFetchLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calorie_advisor_page_fetch_seconds",
			Help:    "Weather page fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	TemperatureResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calorie_advisor_temperature_resolutions_total",
			Help: "Temperature resolutions by outcome (ok or failure kind)",
		},
		[]string{"outcome"},
	)

	Estimates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calorie_advisor_estimates_total",
			Help: "Calorie estimates by temperature factor",
		},
		[]string{"factor"},
	)
)
