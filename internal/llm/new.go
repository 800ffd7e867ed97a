package llm

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGemini creates a Generator backed by the Gemini API.
// The client is created once and reused for every call.
func NewGemini(ctx context.Context, apiKey, model string, log logger.Logger) (Generator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implGemini{
		client: client,
		model:  model,
		logger: log,
	}, nil
}
