package chunker

import (
	"strings"
	"unicode/utf8"
)

// Split breaks the transcript on whitespace and regroups the words into
// chunks. A chunk is closed right after the word that pushes its
// space-joined length past maxLength, so chunks usually overshoot the limit
// by up to one word. Words are never split.
func (c *implChunker) Split(transcript string) []string {
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	length := 0

	for _, word := range words {
		if len(current) > 0 {
			length++ // joining space
		}
		current = append(current, word)
		length += utf8.RuneCountInString(word)

		if length > c.maxLength {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			length = 0
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
