package handlers

import "errors"

var (
	ErrMalformedForm = errors.New("malformed registration form")
)
