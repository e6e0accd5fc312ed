// Package contact implements the portfolio's contact form handler.
//
// Submitting never fails and never validates: whatever the three fields hold is
// acknowledged, recorded to a diagnostic Sink, and the form is reset.
package contact

import (
	"context"
	"fmt"
)

// Field names one of the form's text inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// Fields returns the inputs in tab order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldMessage}
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Form is the current value of the three inputs. The zero value is an empty form.
type Form struct {
	Name    string
	Email   string
	Message string
}

// With returns a copy of f with field set to value.
func (f Form) With(field Field, value string) Form {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// Get returns the value of field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

// IsEmpty reports whether all three fields are empty.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

// Submission is the triple captured when the form is submitted.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Acknowledgment is the confirmation shown to the user after submitting.
type Acknowledgment string

// Acknowledge builds the confirmation for name. The name is interpolated as-is.
func Acknowledge(name string) Acknowledgment {
	return Acknowledgment(fmt.Sprintf("Thank you, %s! Your message has been sent.", name))
}

// Handler submits forms to a diagnostic sink.
type Handler struct {
	sink Sink
}

// NewHandler returns a Handler that records submissions to sink.
// A nil sink discards them.
func NewHandler(sink Sink) *Handler {
	if sink == nil {
		sink = Discard
	}
	return &Handler{sink: sink}
}

// Submit captures form, records it, and returns the acknowledgment together with the
// reset form.
func (h *Handler) Submit(ctx context.Context, form Form) (Acknowledgment, Form) {
	sub := Submission(form)
	ack := Acknowledge(sub.Name)
	h.sink.Record(ctx, sub)
	return ack, Form{}
}
