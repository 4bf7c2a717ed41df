package assistant

import (
	"context"
	"fmt"

	"github.com/t-okazaki/satchel/pkg/utils/logging"
)

// Provider is a language model backend
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of a model invocation. Text is always non-empty:
// when every provider fails, it carries a diagnostic reply and Cause holds
// the last provider error. Exceptions never cross this boundary.
type Result struct {
	Text     string
	Provider string
	Degraded bool
	Cause    error
}

// Invoker walks an ordered list of providers until one answers
type Invoker struct {
	providers []Provider
}

// NewInvoker creates an invoker over the given providers, in priority
// order. Nil entries are skipped so callers can pass optional providers
// directly.
func NewInvoker(providers ...Provider) *Invoker {
	iv := &Invoker{}
	for _, p := range providers {
		if p != nil {
			iv.providers = append(iv.providers, p)
		}
	}
	return iv
}

// Providers returns the names of the configured providers in order
func (iv *Invoker) Providers() []string {
	names := make([]string, 0, len(iv.providers))
	for _, p := range iv.providers {
		names = append(names, p.Name())
	}
	return names
}

// Invoke sends the prompt to the first provider that answers. question is
// the user's original text, embedded in the diagnostic reply when no
// provider is reachable.
func (iv *Invoker) Invoke(ctx context.Context, prompt, question string) Result {
	logger := logging.From(ctx)

	var lastErr error
	for i, p := range iv.providers {
		text, err := p.Generate(ctx, prompt)
		if err != nil {
			logger.Warn("provider failed, trying next", "provider", p.Name(), "error", err)
			lastErr = err
			continue
		}

		return Result{
			Text:     text,
			Provider: p.Name(),
			Degraded: i > 0,
			Cause:    lastErr,
		}
	}

	var diagnostic string
	if lastErr != nil {
		diagnostic = fmt.Sprintf(
			"I couldn't reach a language model to answer this (last error: %v). Your question was: %q — please try again in a moment.",
			lastErr, question)
	} else {
		diagnostic = fmt.Sprintf(
			"No language model is configured, so I can't answer this yet. Your question was: %q — set up a provider and try again.",
			question)
	}

	return Result{
		Text:     diagnostic,
		Provider: "none",
		Degraded: true,
		Cause:    lastErr,
	}
}
