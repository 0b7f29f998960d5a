package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// phone numbers are stored normalized: an optional leading "+" and at
// most 11 digits
var phoneRe = regexp.MustCompile(`^\+?[0-9]{1,11}$`)

func init() {
	validate = validator.New()
	// report fields under their json names so API error details match the payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// Validate checks struct tags and returns field -> failed constraint,
// or nil when everything passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
