package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the custom phone rule
// registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validator errors into a field -> message
// map for the 400 response body.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["request"] = "Invalid request payload"
		return fields
	}
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = messageForTag(fieldErr)
	}
	return fields
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "phone":
		return "Enter a valid phone number"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("Must match the format %s", fieldErr.Param())
	case "url":
		return "Enter a valid URL"
	case "hexcolor":
		return "Enter a valid hex color"
	default:
		return fmt.Sprintf("Failed validation on '%s'", fieldErr.Tag())
	}
}
