package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is the validator instance shared across the application.
var Validator *validator.Validate

// Trans translates validation error messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names from json/mapstructure tags, not Go identifiers.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}

// TranslateValidationErrors renders validator errors as one readable string.
func TranslateValidationErrors(errs validator.ValidationErrors) string {
	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Translate(Trans))
	}
	return strings.Join(messages, "; ")
}
