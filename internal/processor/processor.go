package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nguyentantai21042004/minutes-flow/internal/export"
)

// Process reads a transcript, generates its minutes, writes them to the
// output folder and archives the transcript.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(transcriptPath), filepath.Ext(transcriptPath))

	p.logger.Info(ctx, "Starting transcript: %s", transcriptPath)

	// Step 1: Read transcript
	transcript, err := readTranscript(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	// Step 2: Generate minutes. A started transcript finishes even on shutdown;
	// model errors come back embedded in the text.
	text := p.summarizer.Generate(context.WithoutCancel(ctx), transcript)

	// Step 3: Write minutes
	mdPath, err := p.writeMarkdown(ctx, name, text)
	if err != nil {
		return fmt.Errorf("write minutes: %w", err)
	}

	// Step 4: Optional Word export
	if p.cfg.Export.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
		if err := export.WriteDocx(name+" - Meeting Minutes", text, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export docx %s: %v", docxPath, err)
		} else {
			p.logger.Info(ctx, "Word document: %s", docxPath)
		}
	}

	// Step 5: Move transcript to archived folder so it won't be re-processed
	if err := p.moveToArchived(ctx, transcriptPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive transcript: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s (%s)", filepath.Base(transcriptPath), mdPath, time.Since(startTime).Round(time.Millisecond))
	return nil
}

func readTranscript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.New("transcript is not valid UTF-8 text")
	}
	return string(data), nil
}

func (p *implProcessor) writeMarkdown(ctx context.Context, name, text string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		name,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(text),
	)

	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", err
	}
	p.logger.Debug(ctx, "Wrote %d bytes to %s", len(md), mdPath)
	return mdPath, nil
}
