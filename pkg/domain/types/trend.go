package types

// Trend represents the qualitative direction of an emotional metric
// across sessions.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
)

// trendDeadZone absorbs single-unit noise: a two-point delta must exceed
// half a scale point in either direction to leave TrendStable.
const trendDeadZone = 0.5

// ClassifyTrend maps a score delta (latest minus reference) to a trend.
// Lower scores are better on all emotion scales, so a negative delta is
// an improvement. A delta of exactly ±0.5 stays stable.
func ClassifyTrend(delta float64) Trend {
	switch {
	case delta < -trendDeadZone:
		return TrendImproving
	case delta > trendDeadZone:
		return TrendWorsening
	default:
		return TrendStable
	}
}

// IsValid checks if the trend is valid
func (t Trend) IsValid() bool {
	switch t {
	case TrendImproving, TrendWorsening, TrendStable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the trend
func (t Trend) String() string {
	return string(t)
}
