package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate  *validator.Validate //nolint:gochecknoglobals
	translate ut.Translator       //nolint:gochecknoglobals
)

//nolint:gochecknoinits
func init() {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	translate, _ = uni.GetTranslator("en")
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		panic(err)
	}

	getTagValue := func(tag reflect.StructTag) string {
		for _, tagName := range []string{"mapstructure", "json", "koanf"} {
			val := tag.Get(tagName)
			if len(val) != 0 {
				return val
			}
		}

		return ""
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := getTagValue(fld.Tag)
		if len(name) == 0 {
			name = fld.Name
		}

		return "'" + strings.SplitN(name, ",", 2)[0] + "'" // nolint: mnd
	})
}

func ValidateStruct(s any) error { return wrapError(validate.Struct(s), translate) }
