package validator

import (
	"errors"
	"fmt"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// OptionTypes lists the accepted custom task option types
var OptionTypes = []string{"select", "text", "number", "textarea", "checkbox"}

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	_ = v.RegisterValidation("optiontype", func(fl validators.FieldLevel) bool {
		value := fl.Field().String()
		for _, t := range OptionTypes {
			if value == t {
				return true
			}
		}
		return false
	})
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - returns one readable line per failed field
func (v *validator) ValidateStruct(inf interface{}) error {
	err := v.validator.Struct(inf)
	var fieldErrs validators.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}
	return errors.New(strings.Join(lines, "; "))
}

func describe(fe validators.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "optiontype":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(OptionTypes, ", "))
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
