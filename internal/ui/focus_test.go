package ui

import (
	"testing"

	"folio/internal/contact"
)

func TestFieldRing_MoveWraps(t *testing.T) {
	r := newFieldRing()
	if r.Current() != contact.FieldName {
		t.Fatalf("initial = %v, want name", r.Current())
	}
	if got := r.Move(1); got != contact.FieldEmail {
		t.Errorf("Move(1) = %v, want email", got)
	}
	if got := r.Move(2); got != contact.FieldName {
		t.Errorf("Move(2) from email = %v, want name", got)
	}
	if got := r.Move(-1); got != contact.FieldMessage {
		t.Errorf("Move(-1) from name = %v, want message", got)
	}
	if !r.OnLast() {
		t.Error("message should be the last field")
	}
}

func TestFieldRing_OnChange(t *testing.T) {
	r := newFieldRing()
	var changes [][2]contact.Field
	r.OnChange = func(from, to contact.Field) {
		changes = append(changes, [2]contact.Field{from, to})
	}

	r.SetFocus(contact.FieldName) // no change
	r.Move(1)
	if !r.SetFocus(contact.FieldMessage) {
		t.Fatal("SetFocus(message) = false")
	}
	if r.SetFocus(contact.Field(9)) {
		t.Error("SetFocus accepted a field outside the form")
	}

	want := [][2]contact.Field{
		{contact.FieldName, contact.FieldEmail},
		{contact.FieldEmail, contact.FieldMessage},
	}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}
}
