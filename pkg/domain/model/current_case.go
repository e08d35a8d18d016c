package model

// CurrentCase describes the case under counseling right now, used as
// query input for similarity search and insight generation.
type CurrentCase struct {
	EmotionalState EmotionalState `json:"emotionalState"`
	Challenges     []string       `json:"challenges"`
	Interventions  []string       `json:"interventions,omitempty"` // already attempted
	ClientProfile  string         `json:"clientProfile,omitempty"`
	SessionNumber  int            `json:"sessionNumber,omitempty"`
}

// SimilarCase is one similarity search result. It references a stored
// record and never mutates it; instances are constructed per query and
// discarded after consumption.
type SimilarCase struct {
	Record *HistoricalRecord `json:"record"`
	// Similarity is in [0,1], 1 meaning identical.
	Similarity       float64  `json:"similarity"`
	MatchingFactors  []string `json:"matchingFactors"`
	RelevantInsights []string `json:"relevantInsights"`
}
