package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// OpenAI holds configuration for the OpenAI LLM client, used as the
// alternative provider when Gemini is not configured.
type OpenAI struct {
	apiKey string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("ANAMNESIS_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("api_key_configured", o.apiKey != ""),
	}
}

// Configure creates a new OpenAI LLM client from the configured flags.
// Returns nil if no API key is configured.
func (o *OpenAI) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if o.apiKey == "" {
		return nil, nil
	}

	client, err := openai.New(ctx, o.apiKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	return client, nil
}
