package prediction

import (
	"math"
	"strings"

	"github.com/TheMirberrys/height-lab-app/pkg/confidence"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
)

// Gender changes the growth formulas.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts "male"/"female" in any case, plus "m"/"f", "boy"/"girl".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "boy":
		return Male, nil
	case "female", "f", "girl":
		return Female, nil
	}
	return "", apperrors.NewInvalidGenderError("childGender", s)
}

// Method names, in computation order.
const (
	MethodLinearRegression = "Linear Regression"
	MethodParentalHeight   = "Parental Height"
	MethodHeightAtAge2     = "Height at Age 2"
)

// Input holds parsed values. Every height is in inches.
type Input struct {
	CurrentHeight float64  `json:"current_height"`
	AgeYears      float64  `json:"age_years"`
	Gender        Gender   `json:"gender"`
	HeightAt2     *float64 `json:"height_at_2,omitempty"`
	MotherHeight  float64  `json:"mother_height"`
	FatherHeight  float64  `json:"father_height"`
}

// hasHeightAt2 reports whether the optional height at age 2 should be used.
func (in Input) hasHeightAt2() bool {
	if in.HeightAt2 == nil {
		return false
	}
	h := *in.HeightAt2
	return h != 0 && !math.IsNaN(h) && !math.IsInf(h, 0)
}

// MethodResult is the output of one prediction method.
type MethodResult struct {
	Method      string           `json:"method"`
	Height      float64          `json:"height"`
	Confidence  confidence.Level `json:"confidence"`
	Explanation string           `json:"explanation"`
}

// Report is the ordered method results plus the combined prediction.
type Report struct {
	Methods         []MethodResult `json:"methods"`
	FinalHeight     float64        `json:"final_height"`
	ExcludedMethods []string       `json:"excluded_methods,omitempty"`
	ConfidenceScore float64        `json:"confidence_score"`
}

// Heights returns the predicted height of every method in order.
func (r *Report) Heights() []float64 {
	heights := make([]float64, len(r.Methods))
	for i, m := range r.Methods {
		heights[i] = m.Height
	}
	return heights
}
