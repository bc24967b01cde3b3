// Package units provides canonical height and age units and conversions.
package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// HeightUnit is a linear unit for a height measurement.
type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "inches"
)

// CentimetersPerInch is the exact international inch.
const CentimetersPerInch = 2.54

// InchesPerFoot is used for feet/inches display pairs.
const InchesPerFoot = 12

// ParseHeightUnit normalizes a unit name and its common aliases.
// Example: "in", "inch", "Inches" -> Inches
// Example: "centimeters", "CM" -> Centimeters
func ParseHeightUnit(s string) (HeightUnit, error) {
	u := strings.ToLower(strings.TrimSpace(s))

	switch u {
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeters, nil
	case "in", "inch", "inches", "\"":
		return Inches, nil
	}

	return "", fmt.Errorf("unknown height unit: %q", s)
}

// Valid reports whether u is one of the supported height units.
func (u HeightUnit) Valid() bool {
	return u == Centimeters || u == Inches
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
// Non-finite values are returned unchanged.
func RoundTo(v float64, places int32) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Round1 applies the one-decimal rounding policy used for every display-oriented
// height value.
func Round1(v float64) float64 {
	return RoundTo(v, 1)
}

// HeightToInches normalizes a measurement to inches without rounding.
// ok is false when value is not a finite number.
func HeightToInches(value float64, unit HeightUnit) (inches float64, ok bool) {
	if !isFinite(value) {
		return 0, false
	}
	if unit == Centimeters {
		return value / CentimetersPerInch, true
	}
	return value, true
}

// HeightToCentimeters normalizes a measurement to centimeters without rounding.
func HeightToCentimeters(value float64, unit HeightUnit) (cm float64, ok bool) {
	if !isFinite(value) {
		return 0, false
	}
	if unit == Inches {
		return value * CentimetersPerInch, true
	}
	return value, true
}

// HeightBetweenUnits converts value from one unit to another, rounded to one
// decimal place. Converting to the same unit returns value untouched.
func HeightBetweenUnits(value float64, from, to HeightUnit) float64 {
	if from == to {
		return value
	}

	switch {
	case from == Centimeters && to == Inches:
		return Round1(value / CentimetersPerInch)
	case from == Inches && to == Centimeters:
		return Round1(value * CentimetersPerInch)
	default:
		return value
	}
}

// FormatConverted converts a raw field value between units and renders it the
// way the form shows it: one decimal place with a trailing ".0" dropped.
// Empty input stays empty and unparseable input becomes "".
func FormatConverted(value string, from, to HeightUnit) string {
	if value == "" || from == to {
		return value
	}

	num, ok := ParseNumber(value)
	if !ok {
		return ""
	}

	return decimal.NewFromFloat(HeightBetweenUnits(num, from, to)).Round(1).String()
}

// FeetInchesToTotalInches combines a feet/inches pair into whole inches.
// Each part is truncated to a non-negative integer; non-numeric parts count as zero.
func FeetInchesToTotalInches(feet, inches string) int {
	return wholeOrZero(feet)*InchesPerFoot + wholeOrZero(inches)
}

// TotalInchesToFeetInches splits a length into whole feet and the remaining
// inches, rounded to one decimal place.
func TotalInchesToFeetInches(totalInches float64) (feet int, inches float64) {
	if !isFinite(totalInches) || totalInches <= 0 {
		return 0, 0
	}
	feet = int(math.Floor(totalInches / InchesPerFoot))
	inches = Round1(math.Mod(totalInches, InchesPerFoot))
	return feet, inches
}

func wholeOrZero(s string) int {
	n, ok := ParseNumber(s)
	if !ok || n <= 0 {
		return 0
	}
	return int(math.Trunc(n))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
