package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	// ErrGenerationService is returned when the text-generation call
	// fails. No partial analysis is ever returned alongside it.
	ErrGenerationService = goerr.New("generation service failure")
)

// Context keys for error values
const (
	FocusAreaKey = "focus_area"
	LimitKey     = "limit"
)
