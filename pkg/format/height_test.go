package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

func TestHeightFeetInches(t *testing.T) {
	tests := []struct {
		inches float64
		want   string
	}{
		{71.5, `5'11.5"`},
		{72, `6'0"`},
		{70.3, `5'10.3"`},
		{73, `6'1"`},
		{30.04, `2'6"`},
		{0, `0'0"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HeightFeetInches(tt.inches), "%v inches", tt.inches)
	}

	assert.Equal(t, "", HeightFeetInches(math.NaN()))
}

func TestHeightCentimeters(t *testing.T) {
	assert.Equal(t, "177.8 cm", HeightCentimeters(70))
	assert.Equal(t, "182.9 cm", HeightCentimeters(72))
	assert.Equal(t, "", HeightCentimeters(math.Inf(1)))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, "177.8 cm", Height(70, units.Centimeters))
	assert.Equal(t, `5'10"`, Height(70, units.Inches))
}
