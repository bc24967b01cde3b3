// Package prediction computes adult height estimates from a child's
// measurements and the parents' heights.
package prediction

import (
	"fmt"
	"math"

	"github.com/TheMirberrys/height-lab-app/pkg/confidence"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// DefaultOutlierThreshold is the largest distance, in inches, a method result
// may sit from the mean and still count toward the final prediction.
const DefaultOutlierThreshold = 6.0

// Growth model constants.
const (
	MaleGrowthEndAge    = 18.0
	MaleGrowthPerYear   = 2.3
	FemaleGrowthEndAge  = 16.0
	FemaleGrowthPerYear = 2.1
	ParentalAdjustment  = 5.0
	HeightAt2Multiplier = 2.0
)

// Disclaimer accompanies every report shown to a user.
const Disclaimer = "Height predictions are estimates based on statistical models. " +
	"Actual adult height can vary due to nutrition, health conditions, and other environmental factors. " +
	"Consult a pediatrician for medical concerns."

// Engine runs the prediction methods and combines their results.
type Engine struct {
	outlierThreshold float64
}

// NewEngine creates an engine with the default outlier threshold.
func NewEngine() *Engine {
	return &Engine{outlierThreshold: DefaultOutlierThreshold}
}

// WithOutlierThreshold overrides the outlier threshold. Values that are not
// positive keep the default.
func (e *Engine) WithOutlierThreshold(inches float64) *Engine {
	if inches > 0 && !math.IsInf(inches, 0) {
		e.outlierThreshold = inches
	}
	return e
}

// Predict runs every applicable method and combines them. It fails only for
// an unknown gender, a non-finite required value, or an empty result set.
func (e *Engine) Predict(in Input) (*Report, error) {
	if in.Gender != Male && in.Gender != Female {
		return nil, apperrors.NewInvalidGenderError("childGender", string(in.Gender))
	}
	if err := checkFinite(in); err != nil {
		return nil, err
	}

	report := &Report{Methods: make([]MethodResult, 0, 3)}
	report.Methods = append(report.Methods, e.linearRegression(in), e.parentalHeight(in))
	if in.hasHeightAt2() {
		report.Methods = append(report.Methods, e.heightAtAge2(in))
	}

	final, kept, err := aggregate(report.Heights(), e.outlierThreshold)
	if err != nil {
		return nil, err
	}
	report.FinalHeight = final

	levels := make([]confidence.Level, 0, len(report.Methods))
	for i, m := range report.Methods {
		if !kept[i] {
			report.ExcludedMethods = append(report.ExcludedMethods, m.Method)
			continue
		}
		levels = append(levels, m.Confidence)
	}
	report.ConfidenceScore = confidence.AggregateLevels(levels)

	return report, nil
}

func (e *Engine) linearRegression(in Input) MethodResult {
	return MethodResult{
		Method:     MethodLinearRegression,
		Height:     LinearRegression(in.CurrentHeight, in.AgeYears, in.Gender),
		Confidence: confidence.High,
		Explanation: "Based on current height and expected growth rate. Children typically grow at a " +
			"predictable rate, with boys growing until age 18 and girls until age 16.",
	}
}

func (e *Engine) parentalHeight(in Input) MethodResult {
	sign := "+"
	if in.Gender == Female {
		sign = "-"
	}
	return MethodResult{
		Method:     MethodParentalHeight,
		Height:     ParentalHeight(in.MotherHeight, in.FatherHeight, in.Gender),
		Confidence: confidence.Medium,
		Explanation: fmt.Sprintf("Uses the formula: (Mother's height + Father's height %s 5) ÷ 2. "+
			"Genetics play a major role in determining adult height.", sign),
	}
}

func (e *Engine) heightAtAge2(in Input) MethodResult {
	return MethodResult{
		Method:     MethodHeightAtAge2,
		Height:     DoubleHeightAt2(*in.HeightAt2),
		Confidence: confidence.High,
		Explanation: "The \"double height at 2\" rule states that a child's height at age 2 " +
			"multiplied by 2 closely approximates their adult height.",
	}
}

// LinearRegression extrapolates the remaining growth at a fixed yearly rate.
// Past the end age the remaining growth goes negative and is not clamped.
func LinearRegression(currentHeight, ageYears float64, gender Gender) float64 {
	var remaining float64
	if gender == Male {
		remaining = (MaleGrowthEndAge - ageYears) * MaleGrowthPerYear
	} else {
		remaining = (FemaleGrowthEndAge - ageYears) * FemaleGrowthPerYear
	}
	return units.Round1(currentHeight + remaining)
}

// ParentalHeight is the mid-parental height with a fixed gender adjustment.
func ParentalHeight(motherHeight, fatherHeight float64, gender Gender) float64 {
	adjustment := ParentalAdjustment
	if gender != Male {
		adjustment = -ParentalAdjustment
	}
	return units.Round1((motherHeight + fatherHeight + adjustment) / 2)
}

// DoubleHeightAt2 applies the "double height at 2" rule.
func DoubleHeightAt2(heightAt2 float64) float64 {
	return units.Round1(heightAt2 * HeightAt2Multiplier)
}

// FinalHeight averages heights after dropping those further than threshold
// from their mean.
func FinalHeight(heights []float64, threshold float64) (float64, error) {
	final, _, err := aggregate(heights, threshold)
	return final, err
}

func aggregate(heights []float64, threshold float64) (final float64, kept []bool, err error) {
	if len(heights) == 0 {
		return 0, nil, apperrors.NewInsufficientDataError("no prediction methods produced a height")
	}

	avg := mean(heights)
	kept = make([]bool, len(heights))
	valid := make([]float64, 0, len(heights))
	for i, h := range heights {
		if math.Abs(h-avg) <= threshold {
			kept[i] = true
			valid = append(valid, h)
		}
	}

	if len(valid) == 0 {
		return 0, kept, apperrors.NewInsufficientDataError("every prediction was excluded as an outlier")
	}
	return units.Round1(mean(valid)), kept, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func checkFinite(in Input) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"childHeight", in.CurrentHeight},
		{"childAge", in.AgeYears},
		{"motherHeight", in.MotherHeight},
		{"fatherHeight", in.FatherHeight},
	}

	var errs apperrors.List
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			errs = append(errs, apperrors.NewInvalidNumberError(f.name, fmt.Sprint(f.value)))
		}
	}
	return errs.Err()
}
