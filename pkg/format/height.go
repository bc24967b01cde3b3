// Package format renders heights for display.
package format

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// HeightFeetInches formats a height in inches as feet and inches, e.g. 71.5 -> 5'11.5".
// The remainder keeps at most one decimal place.
func HeightFeetInches(totalInches float64) string {
	if math.IsNaN(totalInches) || math.IsInf(totalInches, 0) {
		return ""
	}
	feet := math.Floor(totalInches / units.InchesPerFoot)
	remainder := units.Round1(math.Mod(totalInches, units.InchesPerFoot))
	return fmt.Sprintf("%d'%s\"", int(feet), decimal.NewFromFloat(remainder).String())
}

// HeightCentimeters formats a height in inches as centimeters, e.g. 70 -> "177.8 cm".
func HeightCentimeters(totalInches float64) string {
	if math.IsNaN(totalInches) || math.IsInf(totalInches, 0) {
		return ""
	}
	cm := units.HeightBetweenUnits(totalInches, units.Inches, units.Centimeters)
	return decimal.NewFromFloat(cm).StringFixed(1) + " cm"
}

// Height formats a height in inches for the unit the user picked.
func Height(totalInches float64, unit units.HeightUnit) string {
	if unit == units.Centimeters {
		return HeightCentimeters(totalInches)
	}
	return HeightFeetInches(totalInches)
}
