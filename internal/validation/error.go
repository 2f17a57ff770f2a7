package validation

import (
	"errors"
	"maps"
	"slices"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func wrapError(err error, trans ut.Translator) error {
	if err == nil {
		return nil
	}

	return &validationError{err: err, t: trans}
}

type validationError struct {
	err error
	t   ut.Translator
}

func (v *validationError) Error() string {
	var errs validator.ValidationErrors
	if errors.As(v.err, &errs) {
		values := slices.Collect(maps.Values(errs.Translate(v.t)))
		slices.Sort(values)

		return strings.Join(values, ", ")
	}

	return v.err.Error()
}
