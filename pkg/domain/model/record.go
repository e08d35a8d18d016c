package model

import (
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// EmotionalState holds the four emotion scale scores of one session.
// All scores are 0-10 where higher means more severe.
type EmotionalState struct {
	Depression int    `json:"depression"`
	Anxiety    int    `json:"anxiety"`
	Loneliness int    `json:"loneliness"`
	Anger      int    `json:"anger"`
	Mood       string `json:"mood"`
}

// Clamp returns a copy with every scale score forced into 0-10.
func (s EmotionalState) Clamp() EmotionalState {
	s.Depression = clampScore(s.Depression, 0, 10)
	s.Anxiety = clampScore(s.Anxiety, 0, 10)
	s.Loneliness = clampScore(s.Loneliness, 0, 10)
	s.Anger = clampScore(s.Anger, 0, 10)
	return s
}

// HistoricalRecord represents one historical counseling session's
// structured outcome data. Records are immutable once ingested; derived
// indices and analyses reference them by ID only.
type HistoricalRecord struct {
	ID              types.RecordID  `json:"id"`
	ClientID        types.ClientID  `json:"clientId"`
	SessionNumber   int             `json:"sessionNumber"`
	Date            string          `json:"date"` // ISO form (YYYY-MM-DD), lexically sortable
	DurationMinutes int             `json:"durationMinutes"`
	EmotionalState  EmotionalState  `json:"emotionalState"`
	Interventions   []string        `json:"interventions"`
	Techniques      []string        `json:"techniques"`
	Outcomes        []string        `json:"outcomes"`
	Challenges      []string        `json:"challenges"`
	Breakthroughs   []string        `json:"breakthroughs"`
	FollowUpActions []string        `json:"followUpActions"`
	SpecialNotes    string          `json:"specialNotes"`
	Summary         string          `json:"summary"`
	RiskLevel       types.RiskLevel `json:"riskLevel"`
	Effectiveness   int             `json:"effectiveness"` // 1-10 scale
}

// Normalize returns a copy with all numeric scale fields clamped to
// their documented ranges and the risk level defaulted.
func (r HistoricalRecord) Normalize() HistoricalRecord {
	r.EmotionalState = r.EmotionalState.Clamp()
	r.Effectiveness = clampScore(r.Effectiveness, 1, 10)
	r.RiskLevel = r.RiskLevel.Normalize()
	return r
}

// Clone returns a deep copy so callers cannot mutate stored records
// through shared slices.
func (r *HistoricalRecord) Clone() *HistoricalRecord {
	copied := *r
	copied.Interventions = cloneStrings(r.Interventions)
	copied.Techniques = cloneStrings(r.Techniques)
	copied.Outcomes = cloneStrings(r.Outcomes)
	copied.Challenges = cloneStrings(r.Challenges)
	copied.Breakthroughs = cloneStrings(r.Breakthroughs)
	copied.FollowUpActions = cloneStrings(r.FollowUpActions)
	return &copied
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	copied := make([]string, len(s))
	copy(copied, s)
	return copied
}

func clampScore(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
