package temperature

import (
	"strings"

	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

// NewLocation trims, lower-cases and joins inner whitespace with "-" so the
// segments can be appended to the weather page path.
func NewLocation(country, city string) (Location, error) {
	c := normalizeSegment(country)
	if c == "" {
		return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "country cannot be empty", nil)
	}
	ci := normalizeSegment(city)
	if ci == "" {
		return Location{}, apperrors.Wrap(apperrors.CodeInvalidInput, "city cannot be empty", nil)
	}
	return Location{country: c, city: ci}, nil
}

func normalizeSegment(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
