package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// SlugPlaceholder is substituted with a question's title slug when building its URL.
const SlugPlaceholder = "{slug}"

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("slugtemplate", hasSlugPlaceholder); err != nil {
		return nil, nil, fmt.Errorf("failed to register slugtemplate validation: %w", err)
	}
	if err := validate.RegisterTranslation("slugtemplate", trans, func(ut ut.Translator) error {
		return ut.Add("slugtemplate", "{0} must contain the {1} placeholder", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("slugtemplate", strings.TrimPrefix(fe.Namespace(), "Config."), SlugPlaceholder)
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register slugtemplate translation: %w", err)
	}

	return validate, trans, nil
}

func hasSlugPlaceholder(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), SlugPlaceholder)
}
