package chunker

// DefaultMaxLength is the chunk length threshold, in characters.
const DefaultMaxLength = 4000

type implChunker struct {
	maxLength int
}

// New creates a Chunker closing chunks once they exceed maxLength characters.
// A non-positive maxLength selects DefaultMaxLength.
func New(maxLength int) Chunker {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &implChunker{maxLength: maxLength}
}
