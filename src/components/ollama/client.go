// Package ollama wraps the local Ollama generation API behind the narrow
// prompt-in, text-out contract the rest of the pipeline needs.
package ollama

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/claimlens/claimlens/src/webclient"
)

const defaultBaseURL = "http://localhost:11434"

// Options bound the generation. Low temperature keeps the output as
// deterministic as a sampling model gets; NumPredict caps response length.
type Options struct {
	Temperature float64
	NumPredict  int
}

type Client struct {
	client *api.Client
	model  string
	opts   Options
}

// New builds a client for one model with fixed generation options. The
// request timeout is generous because local models can be slow on first
// load.
func New(model, baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL: %w", err)
	}

	return &Client{
		client: api.NewClient(parsed, webclient.NewDefault(120*time.Second)),
		model:  model,
		opts:   opts,
	}, nil
}

// Generate submits one non-streaming completion request and returns the raw
// response text. Transport failures surface as errors so callers can take
// their documented fallback paths.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": c.opts.Temperature,
			"num_predict": c.opts.NumPredict,
		},
	}

	var text string
	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		text = resp.Response
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	return text, nil
}
