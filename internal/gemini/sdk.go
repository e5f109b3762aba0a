package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/kinosub/kinosub/internal/apperrors"
	"github.com/kinosub/kinosub/internal/httpclient"
	"google.golang.org/api/option"
)

// SDKClient is the generative-ai-go binding of Transport. It speaks to the
// same service as RESTClient but through the official SDK, which handles
// authentication headers and model routing itself.
type SDKClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ Transport = (*SDKClient)(nil)

// NewSDKClient creates an SDK transport for the given model name.
func NewSDKClient(ctx context.Context, apiKey, modelName string) (*SDKClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(generationTemperature)
	return &SDKClient{client: client, model: model}, nil
}

// Close closes the underlying genai client.
func (c *SDKClient) Close() error {
	return c.client.Close()
}

// Generate sends the prompt and returns the first candidate's combined text.
// Per-attempt timeouts are enforced here because the SDK manages its own
// HTTP client.
func (c *SDKClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, httpclient.DefaultTimeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifySDKError(err)
	}
	return sdkResponseText(resp)
}

func sdkResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", apperrors.Malformed(fmt.Errorf("no candidates in response"))
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		var combined strings.Builder
		for _, p := range cand.Content.Parts {
			if text, ok := p.(genai.Text); ok {
				combined.WriteString(string(text))
			}
		}
		if s := strings.TrimSpace(combined.String()); s != "" {
			return s, nil
		}
	}
	return "", apperrors.Malformed(fmt.Errorf("no text parts in response"))
}
