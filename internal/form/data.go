// Package form holds the raw state of the prediction form and turns a
// submission into a prediction report.
package form

import (
	"math"
	"strconv"

	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// Field names, as used for error flags.
const (
	FieldChildHeight    = "childHeight"
	FieldChildAgeYears  = "childAgeYears"
	FieldChildAgeMonths = "childAgeMonths"
	FieldChildAgeWeeks  = "childAgeWeeks"
	FieldChildGender    = "childGender"
	FieldHeightAt2      = "heightAt2"
	FieldMotherHeight   = "motherHeight"
	FieldFatherHeight   = "fatherHeight"
	FieldHeightUnit     = "heightUnit"
	FieldAgeUnit        = "ageUnit"
)

// Data is the form as typed by the user. Every height field shares HeightUnit.
type Data struct {
	ChildHeight    string           `json:"child_height"`
	ChildAgeYears  string           `json:"child_age_years"`
	ChildAgeMonths string           `json:"child_age_months"`
	ChildAgeWeeks  string           `json:"child_age_weeks"`
	ChildGender    string           `json:"child_gender"`
	HeightAt2      string           `json:"height_at_2"`
	MotherHeight   string           `json:"mother_height"`
	FatherHeight   string           `json:"father_height"`
	HeightUnit     units.HeightUnit `json:"height_unit"`
	AgeUnit        units.AgeUnit    `json:"age_unit"`
}

// New returns an empty form in centimeters and years+months.
func New() Data {
	return Data{HeightUnit: units.Centimeters, AgeUnit: units.AgeYearsMonths}
}

// HeightValues are the height fields that follow the shared unit toggle.
type HeightValues struct {
	ChildHeight  string `json:"child_height"`
	HeightAt2    string `json:"height_at_2"`
	MotherHeight string `json:"mother_height"`
	FatherHeight string `json:"father_height"`
}

// OnUnitChange re-derives every height field for a new unit. Empty fields
// stay empty; fields that are not numbers are cleared.
func OnUnitChange(oldUnit, newUnit units.HeightUnit, current HeightValues) HeightValues {
	return HeightValues{
		ChildHeight:  units.FormatConverted(current.ChildHeight, oldUnit, newUnit),
		HeightAt2:    units.FormatConverted(current.HeightAt2, oldUnit, newUnit),
		MotherHeight: units.FormatConverted(current.MotherHeight, oldUnit, newUnit),
		FatherHeight: units.FormatConverted(current.FatherHeight, oldUnit, newUnit),
	}
}

// Heights returns the current height fields.
func (d Data) Heights() HeightValues {
	return HeightValues{
		ChildHeight:  d.ChildHeight,
		HeightAt2:    d.HeightAt2,
		MotherHeight: d.MotherHeight,
		FatherHeight: d.FatherHeight,
	}
}

// WithHeightUnit switches the shared height unit, converting all height fields once.
func (d Data) WithHeightUnit(unit units.HeightUnit) Data {
	if d.HeightUnit == unit {
		return d
	}
	v := OnUnitChange(d.HeightUnit, unit, d.Heights())
	d.ChildHeight, d.HeightAt2, d.MotherHeight, d.FatherHeight = v.ChildHeight, v.HeightAt2, v.MotherHeight, v.FatherHeight
	d.HeightUnit = unit
	return d
}

// WithAgeUnit switches the age representation, carrying the entered age across.
func (d Data) WithAgeUnit(unit units.AgeUnit) Data {
	if d.AgeUnit == unit {
		return d
	}
	age := d.Age()
	d.AgeUnit = unit
	if age.IsZero() {
		return d
	}

	converted := age.In(unit)
	if unit == units.AgeWeeks {
		d.ChildAgeWeeks = strconv.Itoa(converted.Weeks)
		d.ChildAgeYears, d.ChildAgeMonths = "", ""
	} else {
		d.ChildAgeYears = strconv.Itoa(converted.Years)
		d.ChildAgeMonths = strconv.Itoa(converted.Months)
		d.ChildAgeWeeks = ""
	}
	return d
}

// Age reads the age fields for the current age unit. Parts that are not
// whole numbers count as zero.
func (d Data) Age() units.Age {
	if d.AgeUnit == units.AgeWeeks {
		return units.Weeks(wholeOrZero(d.ChildAgeWeeks))
	}
	return units.YearsMonths(wholeOrZero(d.ChildAgeYears), wholeOrZero(d.ChildAgeMonths))
}

func wholeOrZero(s string) int {
	v, ok := units.ParseNumber(s)
	if !ok || v < 0 || v > math.MaxInt32 {
		return 0
	}
	return int(v)
}
