package advisory

import (
	"context"
	"fmt"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/fairmatch/fairmatch-backend/internal/domain"
)

// AnthropicCompleter adapts the Anthropic messages API to the gateway's
// completion contract.
type AnthropicCompleter struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicCompleter wraps an Anthropic client for the given model.
func NewAnthropicCompleter(client anthropic.Client, model string, maxTokens int64) *AnthropicCompleter {
	return &AnthropicCompleter{client: client, model: model, maxTokens: maxTokens}
}

// Complete sends one prompt and returns the first text block of the
// response. Errors wrap domain.ErrAdvisoryBackend for classification.
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisoryBackend, err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrAdvisoryBackend)
	}
	return msg.Content[0].Text, nil
}
