package form

import (
	"context"
	"fmt"
)

// MessageKind distinguishes the two form-level messages the user can see.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// UI receives the controller's presentation side effects. Every callback is
// optional; nil callbacks are skipped. Implementations toggle field-group
// styling, render inline errors, swap the submit label, and so on.
type UI struct {
	// FieldState reports the validation state of one field plus the reason
	// when the state is StateError.
	FieldState func(name string, state FieldState, reason string)
	// Message shows or replaces the form-level message.
	Message func(kind MessageKind, text string)
	// Busy toggles the submit control's disabled/loading presentation.
	Busy func(busy bool)
	// Reset clears all input values after a successful submission.
	Reset func()
}

// Submitter sends collected form data; satisfied by *Client.
type Submitter interface {
	SendQuote(ctx context.Context, data map[string]string) (string, error)
}

// Controller owns the quote form's fields and drives validation and
// submission. One controller manages one form; it is not safe for
// concurrent use, matching its single event-loop origin.
type Controller struct {
	fields        []*Field
	ui            UI
	client        Submitter
	fallbackPhone string
	submitting    bool
}

// NewController builds a controller over the given fields.
// fallbackPhone is included in the failure message so customers can call
// instead when a submission fails.
func NewController(client Submitter, fallbackPhone string, fields ...*Field) *Controller {
	return &Controller{
		fields:        fields,
		ui:            UI{},
		client:        client,
		fallbackPhone: fallbackPhone,
	}
}

// SetUI installs the presentation callbacks.
func (ctrl *Controller) SetUI(ui UI) {
	ctrl.ui = ui
}

// Field returns the field with the given name, or nil.
func (ctrl *Controller) Field(name string) *Field {
	for _, f := range ctrl.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// SetValue updates a field's current value, as an input event would.
// Changing a value clears any displayed error for that field.
func (ctrl *Controller) SetValue(name, value string) {
	f := ctrl.Field(name)
	if f == nil {
		return
	}
	f.SetValue(value)
	ctrl.fieldState(f.Name, StateNeutral, "")
}

// ValidateField applies the field's rule and pushes the resulting visual
// state. It returns the per-field result. Re-running it has no effect
// beyond redisplaying the current state.
func (ctrl *Controller) ValidateField(f *Field) ValidationResult {
	value := f.Value()
	result := validateValue(f.Kind, f.Required, value)

	switch {
	case result.Valid && value != "":
		ctrl.fieldState(f.Name, StateSuccess, "")
	case !result.Valid:
		ctrl.fieldState(f.Name, StateError, result.Reason)
	default:
		ctrl.fieldState(f.Name, StateNeutral, "")
	}

	return result
}

// HandleBlur validates the named field, as the blur listener does.
func (ctrl *Controller) HandleBlur(name string) {
	if f := ctrl.Field(name); f != nil {
		ctrl.ValidateField(f)
	}
}

// ValidateForm validates every required field and reports whether all
// passed. Every field is validated even after the first failure so each
// one displays its own error.
func (ctrl *Controller) ValidateForm() bool {
	valid := true
	for _, f := range ctrl.fields {
		if !f.Required {
			continue
		}
		if result := ctrl.ValidateField(f); !result.Valid {
			valid = false
		}
	}
	return valid
}

// Collect builds the submission payload: each named field mapped to its
// trimmed value. Fields without a name are skipped.
func (ctrl *Controller) Collect() map[string]string {
	data := make(map[string]string, len(ctrl.fields))
	for _, f := range ctrl.fields {
		if f.Name == "" {
			continue
		}
		data[f.Name] = f.Value()
	}
	return data
}

// HandleSubmit runs one submission attempt. It returns the error from the
// network call, if any; the user only ever sees the generic messages.
func (ctrl *Controller) HandleSubmit(ctx context.Context) error {
	if ctrl.submitting {
		// The submit control is disabled while a submission is in flight,
		// so this only guards against a misbehaving embedder.
		return nil
	}

	if !ctrl.ValidateForm() {
		ctrl.message(MessageError, "Please fix the errors above")
		return nil
	}

	ctrl.submitting = true
	ctrl.busy(true)
	defer func() {
		ctrl.submitting = false
		ctrl.busy(false)
	}()

	_, err := ctrl.client.SendQuote(ctx, ctrl.Collect())
	if err != nil {
		ctrl.message(MessageError,
			fmt.Sprintf("Something went wrong. Please try again or call us at %s.", ctrl.fallbackPhone))
		return err
	}

	ctrl.message(MessageSuccess, "Thank you! We'll get back to you soon.")
	ctrl.resetForm()
	return nil
}

// Mount implements Widget. The returned disposer clears all validation
// state, detaching the controller's visual footprint.
func (ctrl *Controller) Mount() (func(), error) {
	return func() {
		ctrl.clearValidationStates()
	}, nil
}

func (ctrl *Controller) resetForm() {
	for _, f := range ctrl.fields {
		f.SetValue("")
	}
	if ctrl.ui.Reset != nil {
		ctrl.ui.Reset()
	}
	ctrl.clearValidationStates()
}

func (ctrl *Controller) clearValidationStates() {
	for _, f := range ctrl.fields {
		ctrl.fieldState(f.Name, StateNeutral, "")
	}
}

func (ctrl *Controller) fieldState(name string, state FieldState, reason string) {
	if ctrl.ui.FieldState != nil {
		ctrl.ui.FieldState(name, state, reason)
	}
}

func (ctrl *Controller) message(kind MessageKind, text string) {
	if ctrl.ui.Message != nil {
		ctrl.ui.Message(kind, text)
	}
}

func (ctrl *Controller) busy(b bool) {
	if ctrl.ui.Busy != nil {
		ctrl.ui.Busy(b)
	}
}
