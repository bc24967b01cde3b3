package form

import (
	"github.com/rs/zerolog"

	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	"github.com/TheMirberrys/height-lab-app/internal/validation"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// Result is a successful submission: the normalized input and its report.
type Result struct {
	Input      prediction.Input   `json:"input"`
	Report     *prediction.Report `json:"report"`
	HeightUnit units.HeightUnit   `json:"height_unit"`
}

// Submitter runs validation, parsing, normalization and prediction.
type Submitter struct {
	engine *prediction.Engine
	logger zerolog.Logger
}

// NewSubmitter creates a submitter around a prediction engine.
func NewSubmitter(engine *prediction.Engine, logger zerolog.Logger) *Submitter {
	if engine == nil {
		engine = prediction.NewEngine()
	}
	return &Submitter{engine: engine, logger: logger}
}

// Submit validates d and, if it passes, predicts. Validation failures are
// returned as an errors.List naming every offending field.
func (s *Submitter) Submit(d Data) (*Result, error) {
	d = d.withDefaults()
	if err := Validate(d); err != nil {
		s.logger.Debug().Err(err).Msg("form rejected")
		return nil, err
	}

	gender, err := prediction.ParseGender(d.ChildGender)
	if err != nil {
		return nil, err
	}

	input := prediction.Input{
		CurrentHeight: toInches(d.ChildHeight, d.HeightUnit),
		AgeYears:      d.Age().InYears(),
		Gender:        gender,
		MotherHeight:  toInches(d.MotherHeight, d.HeightUnit),
		FatherHeight:  toInches(d.FatherHeight, d.HeightUnit),
	}
	if h, ok := units.ParseNumber(d.HeightAt2); ok && h > 0 {
		inches := toInches(d.HeightAt2, d.HeightUnit)
		input.HeightAt2 = &inches
	} else if d.HeightAt2 != "" {
		s.logger.Debug().Str("value", d.HeightAt2).Msg("ignoring unusable height at age 2")
	}

	report, err := s.engine.Predict(input)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("methods", len(report.Methods)).
		Float64("final_height", report.FinalHeight).
		Msg("prediction computed")

	return &Result{Input: input, Report: report, HeightUnit: d.HeightUnit}, nil
}

// Validate runs the unit, presence, numeric and range checks in that order
// and stops at the first stage that fails.
func Validate(d Data) error {
	d = d.withDefaults()

	if err := unitsValid(d); err != nil {
		return err
	}

	required := []validation.Field{
		{Name: FieldChildHeight, Value: d.ChildHeight},
		ageField(d),
		{Name: FieldChildGender, Value: d.ChildGender},
		{Name: FieldMotherHeight, Value: d.MotherHeight},
		{Name: FieldFatherHeight, Value: d.FatherHeight},
	}
	if err := validation.RequiredFieldsPresent(required); err != nil {
		return err
	}

	numeric := []validation.Field{
		{Name: FieldChildHeight, Value: d.ChildHeight},
		{Name: FieldMotherHeight, Value: d.MotherHeight},
		{Name: FieldFatherHeight, Value: d.FatherHeight},
		ageField(d),
	}
	if d.AgeUnit == units.AgeYearsMonths && d.ChildAgeMonths != "" {
		numeric = append(numeric, validation.Field{Name: FieldChildAgeMonths, Value: d.ChildAgeMonths})
	}
	if err := validation.NumericFieldsValid(numeric); err != nil {
		return err
	}
	if err := validation.NonNegative(numeric); err != nil {
		return err
	}

	if err := ageValid(d); err != nil {
		return err
	}

	if _, err := prediction.ParseGender(d.ChildGender); err != nil {
		return err
	}

	height, _ := units.ParseNumber(d.ChildHeight)
	return validation.HeightInRange(FieldChildHeight, height, d.HeightUnit)
}

func (d Data) withDefaults() Data {
	if d.HeightUnit == "" {
		d.HeightUnit = units.Centimeters
	}
	if d.AgeUnit == "" {
		d.AgeUnit = units.AgeYearsMonths
	}
	return d
}

func unitsValid(d Data) error {
	var errs apperrors.List
	if !d.HeightUnit.Valid() {
		errs = append(errs, apperrors.NewInvalidUnitError(FieldHeightUnit, string(d.HeightUnit),
			string(units.Centimeters), string(units.Inches)))
	}
	if !d.AgeUnit.Valid() {
		errs = append(errs, apperrors.NewInvalidUnitError(FieldAgeUnit, string(d.AgeUnit),
			string(units.AgeYearsMonths), string(units.AgeWeeks)))
	}
	return errs.Err()
}

// ageValid requires whole, bounded age parts so Data.Age never truncates or
// overflows.
func ageValid(d Data) error {
	var errs apperrors.List
	check := func(field, value string, max int, unit string) {
		if _, err := validation.WholeNumberInRange(field, value, 0, max, unit); err != nil {
			errs = append(errs, apperrors.Flatten(err)...)
		}
	}

	if d.AgeUnit == units.AgeWeeks {
		check(FieldChildAgeWeeks, d.ChildAgeWeeks, validation.MaxAgeWeeks, "weeks")
		return errs.Err()
	}
	check(FieldChildAgeYears, d.ChildAgeYears, validation.MaxAgeYears, "years")
	if d.ChildAgeMonths != "" {
		check(FieldChildAgeMonths, d.ChildAgeMonths, units.MonthsPerYear-1, "months")
	}
	return errs.Err()
}

func ageField(d Data) validation.Field {
	if d.AgeUnit == units.AgeWeeks {
		return validation.Field{Name: FieldChildAgeWeeks, Value: d.ChildAgeWeeks}
	}
	return validation.Field{Name: FieldChildAgeYears, Value: d.ChildAgeYears}
}

func toInches(value string, unit units.HeightUnit) float64 {
	inches, _ := units.HeightToInches(units.NumberOrZero(value), unit)
	return inches
}
