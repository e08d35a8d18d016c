package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// ResolveLLMClient picks the configured LLM provider, preferring Gemini.
// Exactly one provider must be configured for embedding and generation
// to work.
func ResolveLLMClient(ctx context.Context, gemini *Gemini, openAI *OpenAI) (gollem.LLMClient, error) {
	client, err := gemini.Configure(ctx)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	client, err = openAI.Configure(ctx)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return client, nil
	}

	return nil, goerr.New("an LLM provider is required: set gemini-project or openai-api-key")
}
