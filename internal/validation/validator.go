// Package validation gates form submission. It never mutates input; it only
// reports which fields fail and why.
package validation

import (
	"math"
	"strings"

	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// Realistic height bounds, in centimeters, inclusive.
const (
	MinHeightCm = 20.0
	MaxHeightCm = 250.0
)

// Age bounds. Ages past MaxAgeYears are not a child's and are rejected
// before they reach the engine.
const (
	MaxAgeYears = 21
	MaxAgeWeeks = 1096 // 21 years of 52.1775 weeks
)

// Field is a named raw form value.
type Field struct {
	Name  string
	Value string
}

// RequiredFieldsPresent fails with one MissingField error per empty field.
func RequiredFieldsPresent(fields []Field) error {
	var errs apperrors.List
	for _, f := range fields {
		if isBlank(f.Value) {
			errs = append(errs, apperrors.NewMissingFieldError(f.Name))
		}
	}
	return errs.Err()
}

// NumericFieldsValid fails for every field that does not parse to a finite
// number. An empty field is reported as MissingField, not InvalidNumber.
func NumericFieldsValid(fields []Field) error {
	var errs apperrors.List
	for _, f := range fields {
		if isBlank(f.Value) {
			errs = append(errs, apperrors.NewMissingFieldError(f.Name))
			continue
		}
		if _, ok := units.ParseNumber(f.Value); !ok {
			errs = append(errs, apperrors.NewInvalidNumberError(f.Name, f.Value))
		}
	}
	return errs.Err()
}

// NonNegative fails for every numeric field below zero. Fields that are empty
// or not numbers are skipped; NumericFieldsValid reports those.
func NonNegative(fields []Field) error {
	var errs apperrors.List
	for _, f := range fields {
		if v, ok := units.ParseNumber(f.Value); ok && v < 0 {
			errs = append(errs, apperrors.NewNegativeNumberError(f.Name, f.Value))
		}
	}
	return errs.Err()
}

// HeightInRange checks a height against the realistic range after normalizing
// it to centimeters. Both bounds are valid values.
func HeightInRange(field string, value float64, unit units.HeightUnit) error {
	cm, ok := units.HeightToCentimeters(value, unit)
	if !ok {
		return apperrors.NewInvalidNumberError(field, "")
	}
	if cm < MinHeightCm || cm > MaxHeightCm {
		return apperrors.NewOutOfRangeError(field, MinHeightCm, MaxHeightCm, string(units.Centimeters))
	}
	return nil
}

// IntInRange checks an already-parsed whole number against [min, max].
func IntInRange(field string, value, min, max int, unit string) error {
	if value < min || value > max {
		return apperrors.NewOutOfRangeError(field, float64(min), float64(max), unit)
	}
	return nil
}

// WholeNumberInRange parses value as a whole number within [min, max]. A
// fraction is InvalidNumber; the bound is checked on the parsed float so huge
// values never reach the int conversion.
func WholeNumberInRange(field, value string, min, max int, unit string) (int, error) {
	v, ok := units.ParseNumber(value)
	if !ok {
		return 0, apperrors.NewInvalidNumberError(field, value)
	}
	if v != math.Trunc(v) {
		return 0, apperrors.NewNotWholeNumberError(field, value)
	}
	if v < float64(min) || v > float64(max) {
		return 0, apperrors.NewOutOfRangeError(field, float64(min), float64(max), unit)
	}
	return int(v), nil
}

// AgeValid checks the authoritative representation of a: whole years up to
// MaxAgeYears with months 0-11, or weeks up to MaxAgeWeeks.
func AgeValid(a units.Age) error {
	if !a.Unit.Valid() {
		return apperrors.NewInvalidUnitError("ageUnit", string(a.Unit), string(units.AgeYearsMonths), string(units.AgeWeeks))
	}
	if a.Unit == units.AgeWeeks {
		return IntInRange("weeks", a.Weeks, 0, MaxAgeWeeks, "weeks")
	}

	var errs apperrors.List
	if a.Years < 0 || a.Years > MaxAgeYears {
		errs = append(errs, apperrors.NewOutOfRangeError("years", 0, MaxAgeYears, "years"))
	}
	if a.Months < 0 || a.Months >= units.MonthsPerYear {
		errs = append(errs, apperrors.NewOutOfRangeError("months", 0, units.MonthsPerYear-1, "months"))
	}
	return errs.Err()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
