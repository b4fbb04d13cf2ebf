// Package chatter is a thin pass-through to a generative text endpoint; the
// bot forwards messages that mention it and relays the completion back.
package chatter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrDisabled is returned when no endpoint is configured
var ErrDisabled = errors.New("chatter is not configured")

// Config holds the settings for the chatter client
type Config struct {
	// Endpoint is the completion URL; empty disables the client
	Endpoint string

	// APIKey is sent as a bearer token when set
	APIKey string

	// Model is forwarded verbatim to the endpoint
	Model string

	// Timeout bounds a single completion call
	Timeout time.Duration

	// Optional HTTP client, primarily for testing
	HTTPClient *http.Client
}

// Client calls the configured completion endpoint
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// CompleteInput contains the prompt to complete
type CompleteInput struct {
	Prompt string
}

// CompleteOutput contains the completion
type CompleteOutput struct {
	Reply string
}

type completeRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completeResponse struct {
	Reply string `json:"reply"`
}

// New creates a new chatter client
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: httpClient,
	}
}

// Enabled reports whether an endpoint is configured
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Complete sends the prompt to the endpoint and returns the completion
func (c *Client) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if input == nil || input.Prompt == "" {
		return nil, errors.New("input and prompt cannot be empty")
	}

	body, err := json.Marshal(completeRequest{
		Model:  c.model,
		Prompt: input.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion endpoint returned status %d", resp.StatusCode)
	}

	var decoded completeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &CompleteOutput{Reply: decoded.Reply}, nil
}
