package calorie

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/yanqian/calorie-advisor/pkg/errors"
)

// placePattern allows letter words joined by single spaces or hyphens, with
// optional surrounding spaces.
var placePattern = regexp.MustCompile(`^ *[a-zA-Z]+([ -][a-zA-Z]+)* *$`)

// ValidatePlace implements the "place" binding rule used by Request.
func ValidatePlace(fl validator.FieldLevel) bool {
	return placePattern.MatchString(fl.Field().String())
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.Split(f.Tag.Get("json"), ",")[0]
	})
	if err := v.RegisterValidation("place", ValidatePlace); err != nil {
		panic(err)
	}
	return v
}

// Validate applies the binding rules of Request for callers that do not go
// through gin, such as the CLI.
func (r Request) Validate() error {
	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return apperrors.Wrap(apperrors.CodeInvalidInput, strings.Join(msgs, "; "), nil)
}
