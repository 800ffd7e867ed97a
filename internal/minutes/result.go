package minutes

import "fmt"

// Result is the outcome of one generation call: text on success, Err otherwise.
type Result struct {
	Text string
	Err  error
}

// Failed reports whether the call did not produce text.
func (r Result) Failed() bool {
	return r.Err != nil
}

// ChunkMinutes is the summary of the chunk at Index (0-based).
type ChunkMinutes struct {
	Index int
	Result
}

// Render returns the chunk summary, or an error marker naming the chunk.
func (m ChunkMinutes) Render() string {
	if m.Failed() {
		return fmt.Sprintf("Error processing chunk %d: %v", m.Index+1, m.Err)
	}
	return m.Text
}

// renderFinal returns the final document, or an error marker for the reduce call.
func renderFinal(r Result) string {
	if r.Failed() {
		return fmt.Sprintf("Error generating final meeting minutes: %v", r.Err)
	}
	return r.Text
}
