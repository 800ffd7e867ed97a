package minutes

import "context"

// Summarizer turns a raw transcript into meeting minutes.
// Generate never fails: remote errors are embedded in the returned text.
type Summarizer interface {
	Generate(ctx context.Context, transcript string) string
}
