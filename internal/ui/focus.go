package ui

import "folio/internal/contact"

// fieldRing tracks which contact field has the cursor and rotates through them in
// form order, wrapping at both ends.
type fieldRing struct {
	order    []contact.Field
	current  int
	OnChange func(from, to contact.Field)
}

func newFieldRing() fieldRing {
	return fieldRing{order: contact.Fields()}
}

// Current returns the field with the cursor.
func (r *fieldRing) Current() contact.Field {
	return r.order[r.current]
}

// Index is Current's position in form order.
func (r *fieldRing) Index() int {
	return r.current
}

// OnLast reports whether the cursor is on the final field.
func (r *fieldRing) OnLast() bool {
	return r.current == len(r.order)-1
}

// Move shifts the cursor by delta fields and returns the new current field.
func (r *fieldRing) Move(delta int) contact.Field {
	n := len(r.order)
	r.set((r.current%n + delta%n + n) % n)
	return r.Current()
}

// SetFocus moves the cursor to f. Returns false if f is not part of the form.
func (r *fieldRing) SetFocus(f contact.Field) bool {
	for i, o := range r.order {
		if o == f {
			r.set(i)
			return true
		}
	}
	return false
}

func (r *fieldRing) set(i int) {
	from := r.Current()
	r.current = i
	if r.OnChange != nil && from != r.Current() {
		r.OnChange(from, r.Current())
	}
}
