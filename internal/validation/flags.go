package validation

import apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"

// FieldErrors tracks which form fields are currently flagged as invalid.
// A flag is cleared when the user edits that field and the whole set is
// replaced on resubmission.
type FieldErrors map[string]bool

// NewFieldErrors returns an empty, writable set of flags. The zero value is
// nil and must not be written to.
func NewFieldErrors() FieldErrors {
	return FieldErrors{}
}

// FlagsFromError flags every field named by err.
func FlagsFromError(err error) FieldErrors {
	flags := NewFieldErrors()
	for _, e := range apperrors.Flatten(err) {
		if e.Field != "" {
			flags[e.Field] = true
		}
	}
	return flags
}

// Set flags a field.
func (f FieldErrors) Set(field string) {
	f[field] = true
}

// Clear unflags a single field.
func (f FieldErrors) Clear(field string) {
	delete(f, field)
}

// Has reports whether a field is flagged.
func (f FieldErrors) Has(field string) bool {
	return f[field]
}

// Any reports whether any field is flagged.
func (f FieldErrors) Any() bool {
	for _, v := range f {
		if v {
			return true
		}
	}
	return false
}
