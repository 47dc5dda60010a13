package render

import "github.com/khanghh/odin-signup/internal/forms"

type RegisterPageData struct {
	CSRFToken  string
	Values     forms.RawFormFields
	FormErrors forms.FieldErrors
}

type ErrorPageData struct {
	Code    int
	Message string
}
