package types

import "fmt"

// Dimension represents an analytical view of a record used to build a
// focused embedding index.
type Dimension string

const (
	// DimensionComprehensive covers every field of a record and backs the
	// main index.
	DimensionComprehensive Dimension = "comprehensive"
	DimensionEmotional     Dimension = "emotional"
	DimensionIntervention  Dimension = "intervention"
	DimensionOutcome       Dimension = "outcome"
)

// AllDimensions returns all valid dimensions
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionComprehensive,
		DimensionEmotional,
		DimensionIntervention,
		DimensionOutcome,
	}
}

// AnalyticalDimensions returns the per-dimension index views, excluding
// the comprehensive main index.
func AnalyticalDimensions() []Dimension {
	return []Dimension{
		DimensionEmotional,
		DimensionIntervention,
		DimensionOutcome,
	}
}

// IsValid checks if the dimension is valid
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionComprehensive,
		DimensionEmotional,
		DimensionIntervention,
		DimensionOutcome:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dimension
func (d Dimension) String() string {
	return string(d)
}

// ParseDimension parses a string into a Dimension
func ParseDimension(s string) (Dimension, error) {
	dim := Dimension(s)
	if !dim.IsValid() {
		return "", fmt.Errorf("invalid dimension: %s", s)
	}
	return dim, nil
}
