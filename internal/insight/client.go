package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	maxErrorBody    = 512
)

type Config struct {
	Enabled     bool          `mapstructure:"enabled"`
	Endpoint    string        `mapstructure:"endpoint"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	c      *Config
	client *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewClient(c *Config) (*Client, error) {
	if c.APIKey == "" {
		return nil, errors.New("insight api key is empty")
	}
	if c.Model == "" {
		return nil, errors.New("insight model is empty")
	}
	timeout := c.HTTPTimeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		c:      c,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (cl *Client) endpoint() string {
	if cl.c.Endpoint == "" {
		return defaultEndpoint
	}
	return cl.c.Endpoint
}

// Generate sends the system and user prompt and returns the first choice's content.
func (cl *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	url := cl.endpoint()
	payload, err := json.Marshal(chatRequest{
		Model: cl.c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   cl.c.MaxTokens,
		Temperature: cl.c.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create POST request to %s: %w", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cl.c.APIKey)

	resp, err := cl.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to POST to %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		slog.Default().ErrorContext(ctx, "text generation endpoint returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(body), maxErrorBody)),
		)
		return "", fmt.Errorf("text generation failed (status %d): %s", resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to decode chat response from %s: %w", url, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("chat response from %s has no choices", url)
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
