// Package llm provides the generative classifier used by the scenario,
// analog, and ticker classification tiers. Every consumer must tolerate a
// nil or failing client and degrade to its deterministic fallback.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the minimal contract the classification tiers need: send a
// prompt, get text back. Failures of any kind (transport, refusal,
// truncation) surface as errors and are handled as tier failures.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const (
	anthropicURL     = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

// AnthropicClient implements Client against the Anthropic messages API.
type AnthropicClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicClient creates a client. model may be empty to use the default.
func NewAnthropicClient(apiKey, model string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	return &AnthropicClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}, nil
}

// NewAnthropicClientWithBaseURL creates a client against a custom endpoint (for testing)
func NewAnthropicClientWithBaseURL(apiKey, model, baseURL string) (*AnthropicClient, error) {
	c, err := NewAnthropicClient(apiKey, model)
	if err != nil {
		return nil, err
	}
	c.baseURL = baseURL
	return c, nil
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends prompt as a single user message and returns the text of
// the first content block.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]any{
		"model":      c.model,
		"max_tokens": defaultMaxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return response.Content[0].Text, nil
}
