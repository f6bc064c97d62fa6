// Package gemini wraps the Gemini API behind a small interface so the
// analysis pipeline can be tested against a fake oracle. Every query runs
// with Google Search grounding enabled, and the grounding sources are
// surfaced alongside the generated text.
package gemini

import (
	"context"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client performs grounded text generation against the Gemini API.
type Client interface {
	Generate(ctx context.Context, prompt string) (*GroundedResponse, error)
}

// GroundedResponse is the raw outcome of one oracle query: free text that
// should contain a JSON payload, plus the web sources the model grounded on.
type GroundedResponse struct {
	Text      string
	Citations []Citation
}

// Citation is one grounding source.
type Citation struct {
	URI   string
	Title string
}

// Option configures the client.
type Option func(*genaiClient)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *genaiClient) {
		c.model = model
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *genaiClient) {
		c.temperature = &t
	}
}

type genaiClient struct {
	client      *genai.Client
	model       string
	temperature *float32
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (Client, error) {
	if apiKey == "" {
		return nil, eris.New("gemini: api key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, eris.Wrap(err, "gemini: create client")
	}

	c := &genaiClient{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *genaiClient) Generate(ctx context.Context, prompt string) (*GroundedResponse, error) {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	if c.temperature != nil {
		cfg.Temperature = c.temperature
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: generate content")
	}

	out := &GroundedResponse{Text: resp.Text()}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			out.Citations = append(out.Citations, Citation{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}
	return out, nil
}
