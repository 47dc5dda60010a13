package forms

import (
	"fmt"
	"strings"
)

// Field names a registration form input. Values match the HTML input names.
type Field string

const (
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
	Email           Field = "email"
	PhoneNumber     Field = "phoneNumber"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
)

// Fields lists every form field in display order.
var Fields = []Field{FirstName, LastName, Email, PhoneNumber, Password, ConfirmPassword}

func (f Field) Valid() bool {
	for _, field := range Fields {
		if f == field {
			return true
		}
	}
	return false
}

// RawFormFields is the unvalidated form input as submitted by the browser.
type RawFormFields struct {
	FirstName       string `form:"firstName" validate:"min=2,max=30"`
	LastName        string `form:"lastName" validate:"min=2,max=30"`
	Email           string `form:"email" validate:"emailaddr"`
	PhoneNumber     string `form:"phoneNumber" validate:"phone"`
	Password        string `form:"password" validate:"min=5,max=20"`
	ConfirmPassword string `form:"confirmPassword" validate:"min=5,max=20"`
}

func (r *RawFormFields) Get(field Field) string {
	switch field {
	case FirstName:
		return r.FirstName
	case LastName:
		return r.LastName
	case Email:
		return r.Email
	case PhoneNumber:
		return r.PhoneNumber
	case Password:
		return r.Password
	case ConfirmPassword:
		return r.ConfirmPassword
	}
	return ""
}

func (r *RawFormFields) Set(field Field, value string) {
	switch field {
	case FirstName:
		r.FirstName = value
	case LastName:
		r.LastName = value
	case Email:
		r.Email = value
	case PhoneNumber:
		r.PhoneNumber = value
	case Password:
		r.Password = value
	case ConfirmPassword:
		r.ConfirmPassword = value
	}
}

// FormData is a registration payload that passed every field and cross-field rule.
type FormData struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// FieldValidationError reports a single field that failed validation.
type FieldValidationError struct {
	Field   Field
	Message string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors maps a field to its validation message. A field carries at most one message.
type FieldErrors map[Field]string

// Errors returns the failures in display order.
func (e FieldErrors) Errors() []*FieldValidationError {
	errs := make([]*FieldValidationError, 0, len(e))
	for _, field := range Fields {
		if msg, ok := e[field]; ok {
			errs = append(errs, &FieldValidationError{Field: field, Message: msg})
		}
	}
	return errs
}

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e.Errors() {
		msgs = append(msgs, err.Error())
	}
	return "invalid form: " + strings.Join(msgs, "; ")
}
