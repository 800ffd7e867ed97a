package chunker

// Chunker splits a transcript into ordered, word-bounded chunks.
type Chunker interface {
	Split(transcript string) []string
}
