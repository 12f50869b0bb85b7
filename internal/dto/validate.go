// Package dto holds the request/response wire shapes for the documents,
// users, and games resources. Each request shape has a Validate method
// that the services call before building a domain aggregate.
package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	en2 "github.com/go-playground/validator/translations/en"

	"github.com/vku007/objectapi/internal/apperr"
	validator "gopkg.in/go-playground/validator.v9"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

func newValidator() (*validator.Validate, ut.Translator) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	v := validator.New()

	if err := en2.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("identifier", validateIdentifier)
	_ = v.RegisterValidation("dedupids", validateDedupIDs)

	_ = v.RegisterTranslation("identifier", trans, func(ut ut.Translator) error {
		return ut.Add("identifier", "{0} must match [A-Za-z0-9._-]{1,128}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("identifier", fe.Field())
		return t
	})

	_ = v.RegisterTranslation("dedupids", trans, func(ut ut.Translator) error {
		return ut.Add("dedupids", "{0} must contain 1-10 unique identifiers", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("dedupids", fe.Field())
		return t
	})

	return v, trans
}

// validateIdentifier enforces the [A-Za-z0-9._-]{1,128} shape shared by
// every kind's id field.
func validateIdentifier(fl validator.FieldLevel) bool {
	return identifierPattern.MatchString(fl.Field().String())
}

// validateDedupIDs enforces that a []string field contains unique,
// valid identifiers bounded between 1 and 10 entries.
func validateDedupIDs(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}

	n := field.Len()
	if n < 1 || n > 10 {
		return false
	}

	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		v := field.Index(i).String()
		if !identifierPattern.MatchString(v) {
			return false
		}

		if _, dup := seen[v]; dup {
			return false
		}

		seen[v] = struct{}{}
	}

	return true
}

// validateStruct runs validator.v9 over s and translates the first
// failing field into a ValidationError naming that field.
func validateStruct(s any) error {
	v, trans := newValidator()

	if err := v.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]

			return apperr.ValidationError{
				Code:    "invalid_" + fe.Field(),
				Message: fe.Translate(trans),
				Field:   fe.Field(),
			}
		}

		return apperr.ValidationError{Code: "invalid_request", Message: err.Error()}
	}

	return nil
}
