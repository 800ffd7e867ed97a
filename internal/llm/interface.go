package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when a generator is built without credentials.
var ErrMissingAPIKey = errors.New("gemini API key not set: set GOOGLE_API_KEY or gemini.api_key in config")

// SamplingConfig controls randomness and output length of one generation call.
type SamplingConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
}

// Generator is a remote text-completion service.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error)
}
