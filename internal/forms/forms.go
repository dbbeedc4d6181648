// Package forms defines explicit input schemas for each entity plus
// field-level validation. Nothing here touches the database; a form
// that validates cleanly is converted to a model by the caller.
package forms

import "strings"

// FieldError is one validation failure attached to a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field-level validation failures.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a failure for the named field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}
