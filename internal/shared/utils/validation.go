package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/localshop/storefront/internal/shared/errors"
)

// vnPhonePattern accepts exactly ten digits, the shape of a Vietnamese mobile number.
var vnPhonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterValidators(validate)
}

// RegisterValidators installs the json tag-name function and the shop's
// custom tags on v. The HTTP layer calls it on gin's binding engine.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
}

var bindingOnce sync.Once

// RegisterBindingValidators installs the custom tags on gin's default
// validator so `binding:"vnphone"` works in request structs.
func RegisterBindingValidators() {
	bindingOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}

// IsValidPhone reports whether phone is a ten-digit number.
func IsValidPhone(phone string) bool {
	return vnPhonePattern.MatchString(phone)
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	return errors.NewValidationError("Validation failed", formatFieldErrors(validationErrors))
}

func formatFieldErrors(fieldErrors validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, getFieldErrorMessage(fe))
	}
	return strings.Join(messages, "; ")
}

// bindErrorDetails turns gin binding errors into the same messages ValidateStruct produces.
func bindErrorDetails(err error) string {
	var fieldErrors validator.ValidationErrors
	if stderrors.As(err, &fieldErrors) {
		return formatFieldErrors(fieldErrors)
	}
	return err.Error()
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "vnphone":
		return fmt.Sprintf("%s must be a 10-digit phone number", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

// MaskPhone keeps the last three digits of a phone number for logs.
func MaskPhone(phone string) string {
	if len(phone) <= 3 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-3) + phone[len(phone)-3:]
}

// MaskEmail keeps the first character of the local part for logs.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return MaskPhone(email)
	}
	return email[:1] + "***" + email[at:]
}
