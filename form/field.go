// Package form implements the quote-form controller: field validation,
// payload collection and submission to the quote API. It is UI-agnostic:
// visual side effects (error styling, inline messages, busy state) are
// delivered through callbacks supplied by the embedding presentation layer.
package form

import "strings"

// FieldKind selects the validation rule applied to a field.
type FieldKind string

const (
	KindText  FieldKind = "text"
	KindEmail FieldKind = "email"
	KindTel   FieldKind = "tel"
)

// FieldState is the visual validation state of a field group.
type FieldState string

const (
	StateNeutral FieldState = "neutral"
	StateSuccess FieldState = "success"
	StateError   FieldState = "error"
)

// Field is one named input of the quote form.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	value    string
}

// SetValue stores the current input value, untrimmed. Trimming happens at
// validation and collection time, mirroring how the live input keeps
// whatever the user typed.
func (f *Field) SetValue(v string) {
	f.value = v
}

// Value returns the trimmed current value.
func (f *Field) Value() string {
	return strings.TrimSpace(f.value)
}

// ValidationResult is the outcome of validating a single field.
type ValidationResult struct {
	Valid  bool
	Reason string
}
