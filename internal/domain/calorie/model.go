package calorie

import (
	"strings"
	"time"
)

// Gender selects the BMR equation.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender normalizes user input; unknown values are kept so the
// estimator can reject them.
func ParseGender(s string) Gender {
	return Gender(strings.ToLower(strings.TrimSpace(s)))
}

// BodyProfile holds the body metrics the estimate is based on.
type BodyProfile struct {
	Gender   Gender
	WeightKg float64
	HeightCm float64
	AgeYears int
}

// Result is the unrounded estimate.
type Result struct {
	BMR               float64
	TemperatureFactor float64
	DailyIntake       float64
}

// Request captures the payload accepted by the advisor.
type Request struct {
	Gender  string  `json:"gender" binding:"required"`
	Weight  float64 `json:"weight" binding:"required,gte=1"`
	Height  float64 `json:"height" binding:"required,gte=1"`
	Age     int     `json:"age" binding:"required,gte=18"`
	Country string  `json:"country" binding:"required,min=3,max=20,place"`
	City    string  `json:"city" binding:"required,min=3,max=20,place"`
}

// Response is serialized back to API and CLI consumers. Values are rounded
// to two decimals.
type Response struct {
	Gender            string    `json:"gender"`
	BMR               float64   `json:"bmr"`
	TemperatureFactor float64   `json:"temperatureFactor"`
	DailyIntake       float64   `json:"dailyIntake"`
	Temperature       *float64  `json:"temperature"`
	SourceURL         string    `json:"sourceUrl,omitempty"`
	TemperatureError  string    `json:"temperatureError,omitempty"`
	ComputedAt        time.Time `json:"computedAt"`
}
