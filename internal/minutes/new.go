package minutes

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/chunker"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implSummarizer struct {
	generator llm.Generator
	chunker   chunker.Chunker
	logger    logger.Logger
}

// New creates a Summarizer that runs a map phase per chunk and a single reduce call.
func New(gen llm.Generator, c chunker.Chunker, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: gen,
		chunker:   c,
		logger:    log,
	}
}
