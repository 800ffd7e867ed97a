package processor

import "context"

// Processor turns one transcript file into a minutes file.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}
