// Package ai hides the text-completion backends behind a narrow adapter:
// prompt in, raw text out. Provider-specific response unwrapping never
// leaks past this package.
package ai

import "context"

// Completer is the single capability the pipeline needs from a model
// backend.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Settings configures a concrete backend.
type Settings struct {
	Provider  string // "anthropic", "openai", or "mock"
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}
