package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/export"
)

const defaultTranscript = "transcript.txt"

func NewGenerateCmd(deps *Dependencies) *cobra.Command {
	var docxPath string

	cmd := &cobra.Command{
		Use:   "generate [transcript-file]",
		Short: "Generate minutes for a local transcript and print them",
		Long:  "Reads a transcript (default transcript.txt), generates meeting minutes and prints them to standard output.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := defaultTranscript
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}
			if !utf8.Valid(data) {
				return fmt.Errorf("reading transcript: %s is not valid UTF-8 text", path)
			}

			summarizer, err := newSummarizer(ctx, deps)
			if err != nil {
				return err
			}

			text := summarizer.Generate(ctx, string(data))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Generated Meeting Minutes:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, text)

			if docxPath != "" {
				if err := export.WriteDocx("Meeting Minutes", text, docxPath); err != nil {
					return fmt.Errorf("writing docx: %w", err)
				}
				deps.Logger.Info(ctx, "Word document saved: %s", docxPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docxPath, "docx", "", "Also write the minutes as a Word document to this path")

	return cmd
}
