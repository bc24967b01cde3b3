// Package confidence provides confidence labels and score math.
package confidence

import "math"

// Level is the qualitative confidence attached to a prediction method.
type Level string

const (
	High   Level = "High"
	Medium Level = "Medium"
)

// Default scores behind each level.
const (
	HighConfidence   = 0.95
	MediumConfidence = 0.80
)

// Score returns the numeric score for a level. Unknown levels score zero.
func (l Level) Score() float64 {
	switch l {
	case High:
		return HighConfidence
	case Medium:
		return MediumConfidence
	default:
		return 0
	}
}

// Aggregate combines multiple confidence scores.
// Uses geometric mean to penalize low-confidence components.
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	product := 1.0
	for _, s := range scores {
		if s <= 0 {
			return 0
		}
		product *= s
	}

	return math.Pow(product, 1.0/float64(len(scores)))
}

// AggregateLevels is Aggregate over the scores of the given levels.
func AggregateLevels(levels []Level) float64 {
	scores := make([]float64, len(levels))
	for i, l := range levels {
		scores[i] = l.Score()
	}
	return Aggregate(scores)
}
