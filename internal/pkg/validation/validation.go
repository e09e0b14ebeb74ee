package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/utils"
)

var messages = map[string]string{
	"pincode":     "please enter a valid 6-digit pincode",
	"name":        "please enter your name",
	"email":       "please enter a valid email",
	"description": "please enter complaint description",
}

// New returns a validator that knows the "pincode" tag and reports
// fields by their json names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return utils.IsPincode(fl.Field().String())
	})
	return v
}

// Struct validates s and converts the first failing field into a
// *constants.ValidationError.
func Struct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	msg, ok := messages[fe.Field()]
	if !ok {
		msg = "invalid value"
	}
	return constants.NewValidationError(fe.Field(), msg)
}
