package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/chunker"
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/minutes"
	"github.com/nguyentantai21042004/minutes-flow/internal/version"
)

// Dependencies is filled in by the root command before any subcommand runs.
type Dependencies struct {
	Config *config.Config
	Logger logger.Logger

	// NewGenerator builds the remote model client; replaced in tests.
	NewGenerator func(ctx context.Context, cfg *config.Config, log logger.Logger) (llm.Generator, error)
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var configPath string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "minutes",
		Short:         "Generate structured meeting minutes from transcripts",
		Long:          "Splits a meeting transcript into chunks, summarizes each chunk with Gemini, then merges the summaries into one minutes document.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Config == nil {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				deps.Config = cfg
			}
			if logLevel != "" {
				deps.Config.Logging.Level = logLevel
			}
			if deps.Logger == nil {
				deps.Logger = logger.New(deps.Config.Logging.Level, deps.Config.Logging.Format)
			}
			if deps.NewGenerator == nil {
				deps.NewGenerator = newGeminiGenerator
			}
			return nil
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewGenerateCmd(deps))
	rootCmd.AddCommand(NewServeCmd(deps))
	rootCmd.AddCommand(NewWatchCmd(deps))

	return rootCmd
}

func newGeminiGenerator(ctx context.Context, cfg *config.Config, log logger.Logger) (llm.Generator, error) {
	return llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
}

// newSummarizer wires chunker, generator and summarizer. A missing API key
// fails here, before any transcript is read.
func newSummarizer(ctx context.Context, deps *Dependencies) (minutes.Summarizer, error) {
	gen, err := deps.NewGenerator(ctx, deps.Config, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("initializing generator: %w", err)
	}
	return minutes.New(gen, chunker.New(deps.Config.Chunking.MaxLength), deps.Logger), nil
}
