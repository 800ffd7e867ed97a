package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Generate minutes for every transcript dropped into the input folder",
		Long:  "Watches paths.input for new .txt transcripts. Each one is summarized into paths.output and then moved to paths.archived.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg := deps.Config
			for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			summarizer, err := newSummarizer(ctx, deps)
			if err != nil {
				return err
			}

			proc := processor.New(cfg, summarizer, deps.Logger)
			w, err := watcher.New(cfg.Paths.Input, proc.Process, deps.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			deps.Logger.Info(ctx, "Output: %s", cfg.Paths.Output)
			deps.Logger.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
