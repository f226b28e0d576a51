package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicAPIVersion     = "2023-06-01"
	defaultMaxTokens        = 4096
	defaultTemperature      = 0.7
)

// AnthropicClient talks to an Anthropic-compatible messages endpoint.
// Some proxies reshape the reply into an OpenAI-style choices array, so the
// response struct accepts both and Complete unwraps whichever is present.
type AnthropicClient struct {
	client    *resty.Client
	apiKey    string
	model     string
	baseURL   string
	maxTokens int
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropicClient builds a client from backend settings.
func NewAnthropicClient(cfg Settings, timeout time.Duration) *AnthropicClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &AnthropicClient{
		client:    resty.New().SetTimeout(timeout),
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxTokens: maxTokens,
	}
}

// Complete implements Completer.
func (a *AnthropicClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	req := anthropicRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Temperature: defaultTemperature,
		System:      system,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp anthropicResponse
	httpResp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", a.apiKey).
		SetHeader("anthropic-version", anthropicAPIVersion).
		SetBody(req).
		SetResult(&resp).
		SetError(&resp).
		Post(a.baseURL + "/v1/messages")

	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if resp.Error != nil && resp.Error.Message != "" {
		return "", fmt.Errorf("completion API error: %s", resp.Error.Message)
	}
	if httpResp.IsError() {
		return "", fmt.Errorf("completion API returned status %d", httpResp.StatusCode())
	}

	if len(resp.Content) > 0 && strings.TrimSpace(resp.Content[0].Text) != "" {
		return strings.TrimSpace(resp.Content[0].Text), nil
	}
	if len(resp.Choices) > 0 && strings.TrimSpace(resp.Choices[0].Message.Content) != "" {
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}

	return "", fmt.Errorf("no content in completion response")
}
