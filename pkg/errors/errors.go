// Package errors provides the structured, recoverable errors returned by the
// calculation core. Every error here is a data-validation failure that the
// caller can fix by correcting input and resubmitting.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code identifies the kind of failure.
type Code string

const (
	CodeMissingField     Code = "MISSING_FIELD"
	CodeInvalidNumber    Code = "INVALID_NUMBER"
	CodeOutOfRange       Code = "OUT_OF_RANGE"
	CodeInsufficientData Code = "INSUFFICIENT_DATA"
	CodeInvalidGender    Code = "INVALID_GENDER"
	CodeInvalidUnit      Code = "INVALID_UNIT"
)

// Error is a structured error with context.
type Error struct {
	Code        Code   `json:"code"`
	Field       string `json:"field,omitempty"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any error carrying the same code, so callers can test against
// the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrMissingField     = &Error{Code: CodeMissingField, Message: "required field is empty"}
	ErrInvalidNumber    = &Error{Code: CodeInvalidNumber, Message: "value is not a number"}
	ErrOutOfRange       = &Error{Code: CodeOutOfRange, Message: "value is out of range"}
	ErrInsufficientData = &Error{Code: CodeInsufficientData, Message: "not enough data"}
	ErrInvalidGender    = &Error{Code: CodeInvalidGender, Message: "gender must be male or female"}
	ErrInvalidUnit      = &Error{Code: CodeInvalidUnit, Message: "unit is not supported"}
)

// NewMissingFieldError creates an error for an empty required field.
func NewMissingFieldError(field string) *Error {
	return &Error{
		Code:        CodeMissingField,
		Field:       field,
		Message:     fmt.Sprintf("%s is required", humanize(field)),
		Recoverable: true,
	}
}

// NewInvalidNumberError creates an error for a field that is not a finite number.
func NewInvalidNumberError(field, value string) *Error {
	return &Error{
		Code:        CodeInvalidNumber,
		Field:       field,
		Message:     fmt.Sprintf("%s is invalid: %q is not a number", humanize(field), value),
		Recoverable: true,
	}
}

// NewNegativeNumberError creates an error for a measurement below zero.
func NewNegativeNumberError(field, value string) *Error {
	return &Error{
		Code:        CodeInvalidNumber,
		Field:       field,
		Message:     fmt.Sprintf("%s is invalid: %s must not be negative", humanize(field), value),
		Recoverable: true,
	}
}

// NewNotWholeNumberError creates an error for a count that has a fractional part.
func NewNotWholeNumberError(field, value string) *Error {
	return &Error{
		Code:        CodeInvalidNumber,
		Field:       field,
		Message:     fmt.Sprintf("%s is invalid: %s is not a whole number", humanize(field), value),
		Recoverable: true,
	}
}

// NewOutOfRangeError creates an error for a value outside [min, max].
func NewOutOfRangeError(field string, min, max float64, unit string) *Error {
	return &Error{
		Code:        CodeOutOfRange,
		Field:       field,
		Message:     fmt.Sprintf("%s is out of realistic range (%g-%g %s)", humanize(field), min, max, unit),
		Recoverable: true,
	}
}

// NewInsufficientDataError creates an error for an aggregation with nothing to aggregate.
func NewInsufficientDataError(reason string) *Error {
	return &Error{
		Code:        CodeInsufficientData,
		Message:     reason,
		Recoverable: true,
	}
}

// NewInvalidGenderError creates an error for a gender other than male or female.
func NewInvalidGenderError(field, value string) *Error {
	return &Error{
		Code:        CodeInvalidGender,
		Field:       field,
		Message:     fmt.Sprintf("%q is not a valid gender (male, female)", value),
		Recoverable: true,
	}
}

// NewInvalidUnitError creates an error for a unit outside the allowed set.
func NewInvalidUnitError(field, value string, allowed ...string) *Error {
	return &Error{
		Code:        CodeInvalidUnit,
		Field:       field,
		Message:     fmt.Sprintf("%q is not a supported %s (%s)", value, humanize(field), strings.Join(allowed, ", ")),
		Recoverable: true,
	}
}

// List collects several field errors so all of them can be reported at once.
type List []*Error

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Fields returns the field names in the order the errors were added.
func (l List) Fields() []string {
	fields := make([]string, 0, len(l))
	for _, e := range l {
		if e.Field != "" {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Err returns nil for an empty list so callers can `return list.Err()`.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Flatten returns every *Error contained in err, whether err is a single
// *Error or a List.
func Flatten(err error) []*Error {
	if err == nil {
		return nil
	}

	var list List
	if stderrors.As(err, &list) {
		return list
	}

	var e *Error
	if stderrors.As(err, &e) {
		return []*Error{e}
	}
	return nil
}

// humanize turns a camelCase field name into words: "childHeight" -> "child height".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
