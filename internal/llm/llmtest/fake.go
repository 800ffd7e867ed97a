// Package llmtest provides an in-memory llm.Generator for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
)

// Call records one Generate invocation.
type Call struct {
	Prompt string
	Config llm.SamplingConfig
}

// Fake answers each call with Respond, or echoes a fixed reply when Respond is nil.
type Fake struct {
	Respond func(call int, prompt string, cfg llm.SamplingConfig) (string, error)

	mu    sync.Mutex
	calls []Call
}

func (f *Fake) Generate(_ context.Context, prompt string, cfg llm.SamplingConfig) (string, error) {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, Call{Prompt: prompt, Config: cfg})
	f.mu.Unlock()

	if f.Respond == nil {
		return "minutes", nil
	}
	return f.Respond(n, prompt, cfg)
}

// Calls returns a copy of the recorded calls in order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
