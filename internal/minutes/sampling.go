package minutes

import "github.com/nguyentantai21042004/minutes-flow/internal/llm"

// ChunkSampling is used for per-chunk extraction: focused, bounded output.
func ChunkSampling() llm.SamplingConfig {
	return llm.SamplingConfig{
		Temperature:     0.7,
		TopP:            0.9,
		TopK:            50,
		MaxOutputTokens: 2000,
	}
}

// FinalSampling is used for the merged document: richer and longer.
func FinalSampling() llm.SamplingConfig {
	return llm.SamplingConfig{
		Temperature:     0.8,
		TopP:            0.95,
		TopK:            100,
		MaxOutputTokens: 5000,
	}
}
