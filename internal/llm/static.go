package llm

import (
	"context"
	"sync"
)

// StaticGenerator returns canned text, or Err when set. It records every
// prompt it receives.
type StaticGenerator struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

func (g *StaticGenerator) Complete(_ context.Context, prompt string) (*Completion, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.Err != nil {
		return nil, g.Err
	}
	return &Completion{Text: g.Text, Model: "static", Attempts: 1}, nil
}

// Prompts returns a copy of the prompts received so far.
func (g *StaticGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// DisabledGenerator fails every call with Reason, which wraps
// ErrNotConfigured when built by NewGenerator.
type DisabledGenerator struct {
	Reason error
}

func (g DisabledGenerator) Complete(context.Context, string) (*Completion, error) {
	if g.Reason != nil {
		return nil, g.Reason
	}
	return nil, ErrNotConfigured
}
