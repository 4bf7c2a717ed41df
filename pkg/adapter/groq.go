package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq is the fallback language model provider. Groq exposes an
// OpenAI-compatible endpoint, so the client is the openai one pointed at
// their base URL.
type Groq struct {
	llm llms.Model
}

type GroqOption func(*groqConfig)

type groqConfig struct {
	model string
}

func WithGroqModel(model string) GroqOption {
	return func(c *groqConfig) {
		c.model = model
	}
}

func NewGroq(apiKey string, opts ...GroqOption) (*Groq, error) {
	cfg := &groqConfig{
		model: "llama-3.3-70b-versatile",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(cfg.model),
		openai.WithBaseURL(groqBaseURL),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create groq client")
	}

	return &Groq{llm: llm}, nil
}

func (g *Groq) Name() string {
	return "groq"
}

// Generate sends a single prompt and returns the completion text
func (g *Groq) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate groq completion")
	}
	if resp == "" {
		return "", goerr.New("empty groq completion")
	}
	return resp, nil
}
