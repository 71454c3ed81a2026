package http

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request payloads.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator over struct tags.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the payload against its validate tags.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
