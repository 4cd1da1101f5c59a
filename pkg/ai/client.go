package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"resume-builder/pkg/ai/formatters"
)

// Client calls the internal ai-service. Only skill extraction is used; the
// service is treated as a black box answering on /v1/chat.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
	Backoff         time.Duration
	Log             *slog.Logger
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Backoff: time.Second,
		Log:     slog.Default(),
	}
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Only transport failures are retried.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * c.Backoff
			c.Log.Warn("ai-service request failed, retrying", "path", path, "attempt", i+1, "backoff", backoff, "error", err)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *Client) chat(ctx context.Context, input string) (string, error) {
	b, err := json.Marshal(chatRequest{Agent: "auto", Input: input})
	if err != nil {
		return "", err
	}
	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}
	var out chatResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return out.Output, nil
}

// ExtractSkills asks the ai-service for the categorized skills in text and
// returns the JSON it answered with, undecoded.
func (c *Client) ExtractSkills(ctx context.Context, text string) (json.RawMessage, error) {
	start := time.Now()
	output, err := c.chat(ctx, formatters.SkillsPrompt(text, c.DefaultLanguage))
	if err != nil {
		return nil, err
	}
	raw, err := formatters.ExtractJSON(output)
	if err != nil {
		return nil, err
	}
	c.Log.Debug("skills extracted", "bytes", len(raw), "duration", time.Since(start))
	return raw, nil
}
