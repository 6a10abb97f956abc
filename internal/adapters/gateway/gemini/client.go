package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

const (
	DefaultModel = "gemini-1.5-flash"

	// APIKeySecret is the secret-store key the API key is resolved
	// from at wire time.
	APIKeySecret = "gemini/api_key"
)

// Client implements ports.CompletionGateway against the Gemini API.
// Every call is a single blocking GenerateContent round trip; failures
// surface as *domain.GatewayError with the underlying cause intact.
type Client struct {
	client *genai.Client
	model  string
}

var _ ports.CompletionGateway = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &domain.GatewayError{Cause: err}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &domain.GatewayError{Cause: errors.New("model returned an empty completion")}
	}

	return text, nil
}

// Model reports the configured model identifier.
func (c *Client) Model() string {
	return c.model
}
