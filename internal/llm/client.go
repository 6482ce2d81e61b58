// Package llm wraps the upstream chat-completion provider behind a small
// TextGenerator interface so services can be tested with stubs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketforge/internal/config"
	"marketforge/internal/observability"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// TextGenerator produces completion text for a sanitized prompt.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client implements TextGenerator against any OpenAI-compatible
// chat-completions endpoint (OpenRouter by default).
type Client struct {
	model string
	opts  []option.RequestOption
}

// NewClient builds a Client from configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.LLMModel == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{}
	if cfg.LLMAPIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.LLMAPIKey))
	}
	if cfg.LLMBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLMBaseURL))
	}
	return &Client{model: cfg.LLMModel, opts: opts}, nil
}

// Complete sends the prompt as a single user-role message and returns the
// first choice's message content. Provider failures come back as errors,
// never as text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	observability.LLMRequestsTotal.WithLabelValues(c.model).Inc()

	ctx, span := observability.StartUpstreamSpan(ctx, c.model)
	defer span.End()

	client := openai.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		observability.LLMErrorsTotal.WithLabelValues(c.model).Inc()
		span.RecordError(err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("completion request failed with status %d: %w", apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		observability.LLMErrorsTotal.WithLabelValues(c.model).Inc()
		return "", errors.New("empty choices in completion response")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		observability.LLMErrorsTotal.WithLabelValues(c.model).Inc()
		return "", errors.New("empty message content in completion response")
	}
	return text, nil
}
