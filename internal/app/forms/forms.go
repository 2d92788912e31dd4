// Package forms implements the form layer: each form binds request
// data, validates it field by field and carries per-field error
// messages back to the template on failure.
package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps field names to a human-readable validation message.
type Errors map[string]string

// Has reports whether the field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}
