package config

// NewAppConfigForTest creates an AppConfig bound to a file path for testing purposes
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewOpenAIForTest creates an OpenAI config for testing purposes
func NewOpenAIForTest(apiKey string) *OpenAI {
	return &OpenAI{apiKey: apiKey}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRecordsForTest creates a Records config for testing purposes
func NewRecordsForTest(path string) *Records {
	return &Records{path: path}
}
