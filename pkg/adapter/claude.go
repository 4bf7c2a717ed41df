package adapter

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/m-mizutani/goerr/v2"
)

// Claude is the last-resort language model provider, tried only when both
// Gemini and Groq are unavailable or failing.
type Claude struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewClaude creates a new Claude API client
func NewClaude(apiKey string) *Claude {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &Claude{
		client:    &client,
		model:     anthropic.ModelClaudeSonnet4_5,
		maxTokens: 1024,
	}
}

func (c *Claude) Name() string {
	return "claude"
}

// Generate sends a single prompt and returns the concatenated text blocks
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create claude message")
	}

	var sb strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			sb.WriteString(content.AsText().Text)
		}
	}

	if sb.Len() == 0 {
		return "", goerr.New("no text content in claude response")
	}

	return sb.String(), nil
}
