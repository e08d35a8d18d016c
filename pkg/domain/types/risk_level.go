package types

import "fmt"

// RiskLevel represents the assessed risk of a counseling record
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// AllRiskLevels returns all valid risk levels
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
	}
}

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh:
		return true
	default:
		return false
	}
}

// Normalize returns the risk level, treating empty as RiskLevelLow
func (r RiskLevel) Normalize() RiskLevel {
	if r == "" {
		return RiskLevelLow
	}
	return r
}

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid risk level: %s", s)
	}
	return level, nil
}
