package forms

import (
	"errors"
	"fmt"
)

// SubmitFunc receives the payload of a successful submission.
type SubmitFunc func(data FormData)

// Controller holds the in-progress values of a registration form and the errors of the
// last submit attempt. A Controller belongs to a single view and is not safe for concurrent use.
type Controller struct {
	values   RawFormFields
	errors   FieldErrors
	onSubmit SubmitFunc
}

func NewController(onSubmit SubmitFunc) *Controller {
	return &Controller{
		errors:   make(FieldErrors),
		onSubmit: onSubmit,
	}
}

// BindField returns the current value of field and a setter for it.
// Setting a value does not validate anything.
func (c *Controller) BindField(field Field) (string, func(string)) {
	if !field.Valid() {
		panic(fmt.Sprintf("forms: unknown field %q", field))
	}
	onChange := func(value string) {
		c.values.Set(field, value)
	}
	return c.values.Get(field), onChange
}

// Submit validates the current values. On success the errors are cleared and onSubmit is
// called once with the validated data. On failure the errors are recorded and false is returned.
func (c *Controller) Submit() bool {
	data, err := Validate(c.values)
	if err != nil {
		var formErrors FieldErrors
		if !errors.As(err, &formErrors) {
			formErrors = FieldErrors{}
		}
		c.errors = formErrors
		return false
	}

	c.errors = make(FieldErrors)
	if c.onSubmit != nil {
		c.onSubmit(data)
	}
	return true
}

// Errors returns a copy of the errors from the last submit attempt.
func (c *Controller) Errors() FieldErrors {
	errs := make(FieldErrors, len(c.errors))
	for field, msg := range c.errors {
		errs[field] = msg
	}
	return errs
}

func (c *Controller) Error(field Field) string {
	return c.errors[field]
}

func (c *Controller) Values() RawFormFields {
	return c.values
}
