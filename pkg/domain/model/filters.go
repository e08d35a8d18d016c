package model

import (
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// ScoreRange is an inclusive numeric range predicate.
type ScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r *ScoreRange) contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// DateRange is an inclusive range over ISO date strings. Dates are
// lexically sortable, so comparison is plain string ordering.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *DateRange) contains(date string) bool {
	return date >= r.From && date <= r.To
}

// EmotionalStateRange bundles optional per-dimension score ranges.
type EmotionalStateRange struct {
	Depression *ScoreRange `json:"depression,omitempty"`
	Anxiety    *ScoreRange `json:"anxiety,omitempty"`
	Loneliness *ScoreRange `json:"loneliness,omitempty"`
	Anger      *ScoreRange `json:"anger,omitempty"`
}

// SearchFilters is an optional predicate bundle applied to similarity
// search candidates. A record matches iff it satisfies every present
// predicate; an absent predicate is no constraint.
type SearchFilters struct {
	EmotionalState     *EmotionalStateRange `json:"emotionalState,omitempty"`
	RiskLevels         []types.RiskLevel    `json:"riskLevels,omitempty"`
	EffectivenessRange *ScoreRange          `json:"effectivenessRange,omitempty"`
	DateRange          *DateRange           `json:"dateRange,omitempty"`
	SessionNumberRange *ScoreRange          `json:"sessionNumberRange,omitempty"`
}

// Matches reports whether the record satisfies every present predicate.
// It is a pure function of its arguments; no shared state is captured.
func (f *SearchFilters) Matches(record *HistoricalRecord) bool {
	if f == nil {
		return true
	}

	if es := f.EmotionalState; es != nil {
		if es.Depression != nil && !es.Depression.contains(record.EmotionalState.Depression) {
			return false
		}
		if es.Anxiety != nil && !es.Anxiety.contains(record.EmotionalState.Anxiety) {
			return false
		}
		if es.Loneliness != nil && !es.Loneliness.contains(record.EmotionalState.Loneliness) {
			return false
		}
		if es.Anger != nil && !es.Anger.contains(record.EmotionalState.Anger) {
			return false
		}
	}

	if len(f.RiskLevels) > 0 {
		found := false
		for _, level := range f.RiskLevels {
			if record.RiskLevel == level {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.EffectivenessRange != nil && !f.EffectivenessRange.contains(record.Effectiveness) {
		return false
	}
	if f.DateRange != nil && !f.DateRange.contains(record.Date) {
		return false
	}
	if f.SessionNumberRange != nil && !f.SessionNumberRange.contains(record.SessionNumber) {
		return false
	}

	return true
}
