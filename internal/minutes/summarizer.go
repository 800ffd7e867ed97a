package minutes

import (
	"context"
	"strings"
	"time"
)

// Generate splits the transcript, summarizes each chunk in order, then merges
// the chunk summaries into one document. Calls are strictly sequential.
func (s *implSummarizer) Generate(ctx context.Context, transcript string) string {
	startTime := time.Now()

	chunks := s.chunker.Split(transcript)
	s.logger.Info(ctx, "Transcript split into %d chunks", len(chunks))

	chunkMinutes := s.summarizeChunks(ctx, chunks)
	final := s.combine(ctx, chunkMinutes)

	s.logger.Info(ctx, "Minutes generated in %s", time.Since(startTime).Round(time.Millisecond))
	return renderFinal(final)
}

// summarizeChunks is the map phase. A failed chunk is kept as a failed
// Result so the reduce phase still sees every chunk in order.
func (s *implSummarizer) summarizeChunks(ctx context.Context, chunks []string) []ChunkMinutes {
	out := make([]ChunkMinutes, 0, len(chunks))

	for i, chunk := range chunks {
		s.logger.Info(ctx, "Processing chunk %d/%d...", i+1, len(chunks))

		text, err := s.generator.Generate(ctx, buildChunkPrompt(chunk, i), ChunkSampling())
		if err != nil {
			s.logger.Warn(ctx, "Chunk %d failed: %v", i+1, err)
		}
		out = append(out, ChunkMinutes{Index: i, Result: Result{Text: text, Err: err}})
	}

	return out
}

// combine is the reduce phase. Failed chunks are rendered as inline error
// text and merged along with the rest.
func (s *implSummarizer) combine(ctx context.Context, chunkMinutes []ChunkMinutes) Result {
	rendered := make([]string, len(chunkMinutes))
	failed := 0
	for i, m := range chunkMinutes {
		rendered[i] = m.Render()
		if m.Failed() {
			failed++
		}
	}
	if failed > 0 {
		s.logger.Warn(ctx, "%d of %d chunks failed, merging error text in their place", failed, len(chunkMinutes))
	}

	combined := strings.Join(rendered, "\n\n")

	s.logger.Info(ctx, "Generating final meeting minutes...")
	text, err := s.generator.Generate(ctx, buildFinalPrompt(combined), FinalSampling())
	if err != nil {
		s.logger.Error(ctx, "Final minutes failed: %v", err)
	}
	return Result{Text: text, Err: err}
}
