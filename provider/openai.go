package provider

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/VerbaLabs/doctrans"
)

// OpenAICaller calls an OpenAI-compatible chat-completion endpoint. The
// response is returned as raw text; the pipeline's realignment handles any
// deviation from the one-line-per-segment contract.
type OpenAICaller struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// OpenAIConfig holds configuration for the OpenAI-compatible caller.
type OpenAIConfig struct {
	APIKey      string        // API key (uses OPENAI_API_KEY env var if empty)
	Model       string        // Model to use (default: "gpt-4o-mini")
	Temperature float32       // Temperature for generation (default: 0.2)
	BaseURL     string        // Custom base URL, e.g. an x.ai or proxy endpoint (optional)
	Timeout     time.Duration // Per-call timeout (default: 300s)
}

// NewOpenAICaller creates a new OpenAI-compatible caller.
func NewOpenAICaller(cfg OpenAIConfig) *OpenAICaller {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	return &OpenAICaller{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
	}
}

// Call sends one composed batch request and returns the raw response text.
func (c *OpenAICaller) Call(ctx context.Context, req Request) (string, error) {
	if len(req.Segments) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   req.MaxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", &doctrans.ServiceError{
			Message:   "chat completion failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &doctrans.ServiceError{
			Message:   "no response from service",
			Retryable: true,
		}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAICaller implements ServiceCaller
var _ ServiceCaller = (*OpenAICaller)(nil)
