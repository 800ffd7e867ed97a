package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generate sends one prompt to Gemini and returns the text of the first candidate.
func (g *implGemini) Generate(ctx context.Context, prompt string, cfg SamplingConfig) (string, error) {
	g.logger.Debug(ctx, "Calling %s (prompt %d chars, max %d tokens)", g.model, len(prompt), cfg.MaxOutputTokens)

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), toGenerateConfig(cfg))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(result)
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func toGenerateConfig(cfg SamplingConfig) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopP:            genai.Ptr(cfg.TopP),
		TopK:            genai.Ptr(float32(cfg.TopK)),
		MaxOutputTokens: int32(cfg.MaxOutputTokens),
	}
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
