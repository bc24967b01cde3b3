package form

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	"github.com/TheMirberrys/height-lab-app/internal/validation"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

func validData() Data {
	d := New()
	d.ChildHeight = "127"
	d.ChildAgeYears = "8"
	d.ChildGender = "male"
	d.MotherHeight = "165.1"
	d.FatherHeight = "177.8"
	return d
}

func newSubmitter() *Submitter {
	return NewSubmitter(prediction.NewEngine(), zerolog.Nop())
}

func TestSubmit_Centimeters(t *testing.T) {
	result, err := newSubmitter().Submit(validData())
	require.NoError(t, err)

	assert.InDelta(t, 50.0, result.Input.CurrentHeight, 1e-9)
	assert.InDelta(t, 65.0, result.Input.MotherHeight, 1e-9)
	assert.InDelta(t, 70.0, result.Input.FatherHeight, 1e-9)
	assert.Equal(t, 8.0, result.Input.AgeYears)
	assert.Nil(t, result.Input.HeightAt2)

	require.Len(t, result.Report.Methods, 2)
	assert.Equal(t, 73.0, result.Report.Methods[0].Height)
	assert.Equal(t, 70.0, result.Report.Methods[1].Height)
	assert.Equal(t, 71.5, result.Report.FinalHeight)
	assert.Equal(t, units.Centimeters, result.HeightUnit)
}

func TestSubmit_WithHeightAt2(t *testing.T) {
	d := validData()
	d.HeightAt2 = "86.36"

	result, err := newSubmitter().Submit(d)
	require.NoError(t, err)
	require.Len(t, result.Report.Methods, 3)
	assert.Equal(t, 68.0, result.Report.Methods[2].Height)
	assert.Equal(t, 70.3, result.Report.FinalHeight)
}

func TestSubmit_IgnoresUnusableHeightAt2(t *testing.T) {
	for _, v := range []string{"abc", "0"} {
		d := validData()
		d.HeightAt2 = v

		result, err := newSubmitter().Submit(d)
		require.NoError(t, err, v)
		assert.Len(t, result.Report.Methods, 2, v)
	}
}

func TestSubmit_Inches(t *testing.T) {
	d := validData().WithHeightUnit(units.Inches)
	assert.Equal(t, "50", d.ChildHeight)
	assert.Equal(t, "65", d.MotherHeight)
	assert.Equal(t, "70", d.FatherHeight)

	result, err := newSubmitter().Submit(d)
	require.NoError(t, err)
	assert.Equal(t, 71.5, result.Report.FinalHeight)
}

func TestSubmit_Weeks(t *testing.T) {
	d := validData()
	d.AgeUnit = units.AgeWeeks
	d.ChildAgeYears = ""
	d.ChildAgeWeeks = "417"

	result, err := newSubmitter().Submit(d)
	require.NoError(t, err)
	assert.InDelta(t, 7.99, result.Input.AgeYears, 0.01)
	assert.Equal(t, 73.0, result.Report.Methods[0].Height)
}

func TestSubmit_MissingFieldsReportedTogether(t *testing.T) {
	d := validData()
	d.ChildHeight = ""
	d.MotherHeight = ""

	_, err := newSubmitter().Submit(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingField))

	flags := validation.FlagsFromError(err)
	assert.True(t, flags.Has(FieldChildHeight))
	assert.True(t, flags.Has(FieldMotherHeight))
	assert.False(t, flags.Has(FieldFatherHeight))
}

func TestSubmit_MissingAgeForSelectedUnit(t *testing.T) {
	d := validData()
	d.AgeUnit = units.AgeWeeks

	_, err := newSubmitter().Submit(d)
	require.Error(t, err)
	assert.True(t, validation.FlagsFromError(err).Has(FieldChildAgeWeeks))
}

func TestSubmit_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Data)
		want   error
		field  string
	}{
		{"non-numeric father", func(d *Data) { d.FatherHeight = "abc" }, apperrors.ErrInvalidNumber, FieldFatherHeight},
		{"negative mother", func(d *Data) { d.MotherHeight = "-160" }, apperrors.ErrInvalidNumber, FieldMotherHeight},
		{"child too short", func(d *Data) { d.ChildHeight = "15" }, apperrors.ErrOutOfRange, FieldChildHeight},
		{"child too tall", func(d *Data) { d.ChildHeight = "251" }, apperrors.ErrOutOfRange, FieldChildHeight},
		{"months past 11", func(d *Data) { d.ChildAgeMonths = "12" }, apperrors.ErrOutOfRange, FieldChildAgeMonths},
		{"non-numeric months", func(d *Data) { d.ChildAgeMonths = "six" }, apperrors.ErrInvalidNumber, FieldChildAgeMonths},
		{"unknown gender", func(d *Data) { d.ChildGender = "unknown" }, apperrors.ErrInvalidGender, FieldChildGender},
		{"fractional years", func(d *Data) { d.ChildAgeYears = "8.9" }, apperrors.ErrInvalidNumber, FieldChildAgeYears},
		{"fractional months", func(d *Data) { d.ChildAgeMonths = "6.5" }, apperrors.ErrInvalidNumber, FieldChildAgeMonths},
		{"years past max", func(d *Data) { d.ChildAgeYears = "22" }, apperrors.ErrOutOfRange, FieldChildAgeYears},
		{"huge years", func(d *Data) { d.ChildAgeYears = "1e19" }, apperrors.ErrOutOfRange, FieldChildAgeYears},
		{"fractional weeks", func(d *Data) {
			d.AgeUnit, d.ChildAgeYears, d.ChildAgeWeeks = units.AgeWeeks, "", "417.5"
		}, apperrors.ErrInvalidNumber, FieldChildAgeWeeks},
		{"weeks past max", func(d *Data) {
			d.AgeUnit, d.ChildAgeYears, d.ChildAgeWeeks = units.AgeWeeks, "", "5000"
		}, apperrors.ErrOutOfRange, FieldChildAgeWeeks},
		{"unknown age unit", func(d *Data) { d.AgeUnit, d.ChildAgeMonths = "months", "30" }, apperrors.ErrInvalidUnit, FieldAgeUnit},
		{"unknown height unit", func(d *Data) { d.HeightUnit = "furlongs" }, apperrors.ErrInvalidUnit, FieldHeightUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(&d)

			_, err := newSubmitter().Submit(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, validation.FlagsFromError(err).Has(tt.field))
		})
	}
}

func TestSubmit_RangeCheckedInCentimeters(t *testing.T) {
	d := validData()
	d.HeightUnit = units.Inches
	d.ChildHeight = "15" // 38.1 cm, valid even though 15 < 20
	d.MotherHeight = "65"
	d.FatherHeight = "70"
	assert.NoError(t, Validate(d))

	d.ChildHeight = "7.5" // 19.05 cm
	assert.True(t, errors.Is(Validate(d), apperrors.ErrOutOfRange))
}

func TestValidate_UnitsCheckedBeforeFields(t *testing.T) {
	d := validData()
	d.HeightUnit = "furlongs"
	d.AgeUnit = "months"
	d.ChildHeight = ""

	err := Validate(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidUnit))
	assert.False(t, errors.Is(err, apperrors.ErrMissingField))

	flags := validation.FlagsFromError(err)
	assert.True(t, flags.Has(FieldHeightUnit))
	assert.True(t, flags.Has(FieldAgeUnit))
}

func TestOnUnitChange(t *testing.T) {
	got := OnUnitChange(units.Centimeters, units.Inches, HeightValues{
		ChildHeight:  "127",
		HeightAt2:    "",
		MotherHeight: "165.1",
		FatherHeight: "abc",
	})
	assert.Equal(t, HeightValues{ChildHeight: "50", HeightAt2: "", MotherHeight: "65", FatherHeight: ""}, got)

	same := HeightValues{ChildHeight: "127.33"}
	assert.Equal(t, same, OnUnitChange(units.Centimeters, units.Centimeters, same))
}

func TestWithHeightUnit(t *testing.T) {
	d := validData()
	assert.Equal(t, d, d.WithHeightUnit(units.Centimeters))

	inches := d.WithHeightUnit(units.Inches)
	assert.Equal(t, units.Inches, inches.HeightUnit)

	back := inches.WithHeightUnit(units.Centimeters)
	assert.Equal(t, "127", back.ChildHeight)
	assert.Equal(t, "165.1", back.MotherHeight)
	assert.Equal(t, "177.8", back.FatherHeight)
}

func TestWithAgeUnit(t *testing.T) {
	d := validData()
	d.ChildAgeYears = "2"
	d.ChildAgeMonths = "6"

	weeks := d.WithAgeUnit(units.AgeWeeks)
	assert.Equal(t, units.AgeWeeks, weeks.AgeUnit)
	assert.Equal(t, "130", weeks.ChildAgeWeeks)
	assert.Empty(t, weeks.ChildAgeYears)

	back := weeks.WithAgeUnit(units.AgeYearsMonths)
	assert.Equal(t, "2", back.ChildAgeYears)
	assert.Equal(t, "6", back.ChildAgeMonths)
	assert.Empty(t, back.ChildAgeWeeks)

	empty := New().WithAgeUnit(units.AgeWeeks)
	assert.Equal(t, units.AgeWeeks, empty.AgeUnit)
	assert.Empty(t, empty.ChildAgeWeeks)
}

func TestData_Age(t *testing.T) {
	d := validData()
	assert.Equal(t, units.YearsMonths(8, 0), d.Age())

	d.ChildAgeMonths = "3"
	assert.InDelta(t, 8.25, d.Age().InYears(), 1e-9)
}
