package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single field-level validation failure
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

var (
	phonePattern           = regexp.MustCompile(`((\(\d{3}\) ?)|(\d{3}-))?\d{3}-\d{4}`)
	upperPattern           = regexp.MustCompile(`[A-Z]+`)
	lowerPattern           = regexp.MustCompile(`[a-z]+`)
	digitPattern           = regexp.MustCompile(`[0-9]+`)
	passwordSymbolsPattern = regexp.MustCompile(`[!?*.]+`)
)

// Validator wraps go-playground validator with the school-domain rules registered
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with custom rules and JSON field naming
func New() *Validator {
	validate := validator.New()

	// Report the JSON name so clients can map errors back to their payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerRules()

	return v
}

// Validate validates a struct and returns nil when it is valid
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ToValidationErrors converts go-playground errors into ValidationErrors
func ToValidationErrors(err error) ValidationErrors {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ValidationErrors{{
			Field:   "",
			Message: err.Error(),
			Rule:    "invalid",
		}}
	}

	out := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, ValidationError{
			Field:   fieldPath(fe),
			Message: errorMessage(fe),
			Value:   safeValue(fe),
			Rule:    fe.Tag(),
		})
	}
	return out
}

// fieldPath strips the root struct name from the namespace ("UserCreateDto.email" -> "email")
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// safeValue keeps passwords out of error payloads and logs
func safeValue(fe validator.FieldError) interface{} {
	if fe.Tag() == "password_strength" || strings.EqualFold(fe.Field(), "password") {
		return nil
	}
	return fe.Value()
}

// registerRules registers the custom rules used by the DTO tags
func (v *Validator) registerRules() {
	v.validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	// 8-16 characters with upper, lower, digit and one of ! ? * .
	v.validate.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 8 || len(pw) > 16 {
			return false
		}
		return upperPattern.MatchString(pw) &&
			lowerPattern.MatchString(pw) &&
			digitPattern.MatchString(pw) &&
			passwordSymbolsPattern.MatchString(pw)
	})

	v.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "phone":
		return "is not a valid phone number"
	case "password_strength":
		return "must be 8-16 characters and contain an uppercase letter, a lowercase letter, a number and one of (!? *.)"
	case "notblank":
		return "must not be blank"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
