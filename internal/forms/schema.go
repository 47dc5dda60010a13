package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	emailValidatorTag = "emailaddr"
	phoneValidatorTag = "phone"
)

const (
	MsgInvalidEmail      = "Invalid email"
	MsgInvalidNumber     = "Invalid Number!"
	MsgInvalidInput      = "Invalid input"
	MsgPasswordsMismatch = "passwords should match"
)

// phoneSpace matches the same whitespace as a browser regex \s, which includes Unicode space separators.
const phoneSpace = `\s\x{0B}\p{Zs}\x{FEFF}\x{2028}\x{2029}`

var (
	// dot separated atoms before the @, a domain of labels that do not start with a hyphen
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9_'+\-]+(\.[A-Za-z0-9_'+\-]+)*@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^([+]?[` + phoneSpace + `0-9]+)?(\d{3}|[(]?[0-9]+[)])?([-]?[` + phoneSpace + `]?[0-9])+$`)
)

var validate = newValidator()

func isValidEmail(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return emailRegex.MatchString(input)
}

func isValidPhone(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return phoneRegex.MatchString(input)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("form"); name != "" {
			return name
		}
		return field.Name
	})
	if err := v.RegisterValidation(emailValidatorTag, isValidEmail); err != nil {
		panic(fmt.Errorf("failed to register %s validator: %w", emailValidatorTag, err))
	}
	if err := v.RegisterValidation(phoneValidatorTag, isValidPhone); err != nil {
		panic(fmt.Errorf("failed to register %s validator: %w", phoneValidatorTag, err))
	}
	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case emailValidatorTag:
		return MsgInvalidEmail
	case phoneValidatorTag:
		return MsgInvalidNumber
	default:
		return MsgInvalidInput
	}
}

// Validate checks every field of input and the password confirmation rule.
// It returns the validated FormData, or a FieldErrors error holding one message per failing field.
func Validate(input RawFormFields) (FormData, error) {
	formErrors := make(FieldErrors)
	if err := validate.Struct(&input); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return FormData{}, err
		}
		for _, fe := range errs {
			field := Field(fe.Field())
			if _, exists := formErrors[field]; !exists {
				formErrors[field] = fieldMessage(fe)
			}
		}
	}

	// confirmation is only compared once both passwords are individually valid
	_, passwordFailed := formErrors[Password]
	_, confirmFailed := formErrors[ConfirmPassword]
	if !passwordFailed && !confirmFailed && input.Password != input.ConfirmPassword {
		formErrors[ConfirmPassword] = MsgPasswordsMismatch
	}

	if len(formErrors) > 0 {
		return FormData{}, formErrors
	}
	return FormData(input), nil
}
