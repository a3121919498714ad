// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

package explain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviemate/internal/extsvc"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultOpenAIModel   = "gpt-4o-mini"
	openAIService        = "openai"
	maxErrorBody         = 512
)

// ErrNoAPIKey means the completer has no credentials configured.
var ErrNoAPIKey = errors.New("no API key configured")

// OpenAIConfig configures OpenAIClient.
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultOpenAIConfig returns gpt-4o-mini at temperature 0.7 with 150 tokens.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		BaseURL:     defaultOpenAIBaseURL,
		Model:       defaultOpenAIModel,
		Temperature: 0.7,
		MaxTokens:   150,
		Timeout:     8 * time.Second,
	}
}

// OpenAIClient is a Completer for OpenAI-compatible chat completion APIs.
type OpenAIClient struct {
	cfg        OpenAIConfig
	guard      *extsvc.Guard
	httpClient *http.Client
}

// NewOpenAIClient creates a client. guard may be nil for an unlimited,
// default-breaker guard.
//
//nolint:gocritic // hugeParam: config copied once at construction
func NewOpenAIClient(cfg OpenAIConfig, guard *extsvc.Guard) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	if guard == nil {
		guard = extsvc.NewGuard(openAIService, nil, nil)
	}
	return &OpenAIClient{
		cfg:        cfg,
		guard:      guard,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Complete implements Completer.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &extsvc.Error{Service: openAIService, Op: "chat_completion", Err: ErrNoAPIKey}
	}
	return extsvc.Do(ctx, c.guard, "chat_completion", func(ctx context.Context) (string, error) {
		return c.complete(ctx, prompt)
	})
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &extsvc.Error{
			Service:    openAIService,
			Op:         "chat_completion",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(snippet))),
		}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
