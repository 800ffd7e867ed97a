package processor

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer minutes.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, s minutes.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: s,
		logger:     log,
	}
}
