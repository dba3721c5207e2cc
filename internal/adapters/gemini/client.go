package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"trip_planner/internal/adapters/observability"
)

// Client wraps the Gemini API behind the planner's TextModel port. One
// request per operation; when a model name is rejected upstream the call
// falls through an ordered chain of known-good models before giving up.
type Client struct {
	client *genai.Client
	models []string
}

type Config struct {
	APIKey string
	Model  string // preferred model, tried first
}

var fallbackModels = []string{"gemini-2.0-flash", "gemini-1.5-flash"}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	chain := make([]string, 0, 1+len(fallbackModels))
	if cfg.Model != "" {
		chain = append(chain, cfg.Model)
	}
	for _, m := range fallbackModels {
		if m != cfg.Model {
			chain = append(chain, m)
		}
	}
	return &Client{client: cl, models: chain}, nil
}

func (c *Client) Generate(ctx context.Context, destination string, days int, budget float64) (string, error) {
	prompt := fmt.Sprintf(
		"Plan a %d-day trip to %s with a total budget of %.0f. "+
			"Present the plan day-wise, each day starting on its own line as \"Day N:\".",
		days, destination, budget)
	return c.generate(ctx, prompt)
}

func (c *Client) Translate(ctx context.Context, text, language string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following travel itinerary into %s. "+
			"Preserve the line structure and the day-wise format exactly.\n\n%s",
		language, text)
	return c.generate(ctx, prompt)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, model := range c.models {
		start := time.Now()
		resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		status := 200
		if err != nil {
			status = 0
		}
		observability.ObserveExternal("gemini", model, status, time.Since(start))
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		if text := collectText(resp); text != "" {
			return text, nil
		}
		lastErr = errors.New("empty candidate content")
	}
	return "", fmt.Errorf("gemini: all models failed: %w", lastErr)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
