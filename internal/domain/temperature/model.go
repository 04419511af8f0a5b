package temperature

import (
	"errors"

	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

// Location is a normalized (country, city) pair. Build it with NewLocation.
type Location struct {
	country string
	city    string
}

// Country returns the normalized country segment.
func (l Location) Country() string { return l.country }

// City returns the normalized city segment.
func (l Location) City() string { return l.city }

// Reading is a successfully extracted temperature.
type Reading struct {
	Celsius   float64 `json:"celsius"`
	SourceURL string  `json:"sourceUrl"`
}

// ErrorKind classifies why a temperature could not be resolved. The resolver
// never yields ComputationError; the calorie estimator reports invalid
// profiles with it.
type ErrorKind string

const (
	NetworkError        ErrorKind = apperrors.CodeNetwork
	MissingElementError ErrorKind = apperrors.CodeMissingElement
	ParseError          ErrorKind = apperrors.CodeParse
	ComputationError    ErrorKind = apperrors.CodeComputation
)

var errEmptyOutcome = errors.New("outcome carries neither a reading nor a failure")

// Failure describes an unsuccessful resolution.
type Failure struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

// Outcome holds either a Reading or a Failure, never both. Build it with
// Succeeded or Failed; the zero value is invalid and reports errEmptyOutcome
// from Err.
type Outcome struct {
	reading *Reading
	failure *Failure
}

// Succeeded wraps a reading.
func Succeeded(r Reading) Outcome {
	return Outcome{reading: &r}
}

// Failed wraps a failure of the given kind.
func Failed(kind ErrorKind, detail string) Outcome {
	return Outcome{failure: &Failure{Kind: kind, Detail: detail}}
}

// OK reports whether the outcome carries a reading.
func (o Outcome) OK() bool {
	return o.reading != nil
}

// Reading returns the reading and true on success.
func (o Outcome) Reading() (Reading, bool) {
	if o.reading == nil {
		return Reading{}, false
	}
	return *o.reading, true
}

// Failure returns the failure and true when resolution failed.
func (o Outcome) Failure() (Failure, bool) {
	if o.failure == nil {
		return Failure{}, false
	}
	return *o.failure, true
}

// Err converts a failure into an AppError coded by its kind. It is nil on success.
func (o Outcome) Err() error {
	if o.reading != nil {
		return nil
	}
	if o.failure == nil {
		return errEmptyOutcome
	}
	return apperrors.Wrap(string(o.failure.Kind), o.failure.Detail, nil)
}

// Celsius returns a pointer to the reading's value, or nil on failure.
func (o Outcome) Celsius() *float64 {
	if o.reading == nil {
		return nil
	}
	v := o.reading.Celsius
	return &v
}
