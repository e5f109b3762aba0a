package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kinosub/kinosub/internal/apperrors"
	"github.com/kinosub/kinosub/internal/httpclient"
)

// generationTemperature keeps translations close to the source text.
const generationTemperature = 0.2

const endpointBase = "https://generativelanguage.googleapis.com/v1beta/models"

// EndpointForModel builds a generateContent endpoint URL from a model name.
func EndpointForModel(model string) string {
	return fmt.Sprintf("%s/%s:generateContent", endpointBase, model)
}

// RESTClient is the default transport: one HTTP POST per prompt against a
// generateContent endpoint, with the API key as a query parameter.
type RESTClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ Transport = (*RESTClient)(nil)

// NewRESTClient creates a REST transport for the given endpoint URL.
func NewRESTClient(endpoint, apiKey string) *RESTClient {
	return &RESTClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   httpclient.Default(),
	}
}

// Generate posts the prompt and returns the first candidate's text.
func (c *RESTClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: generationTemperature},
	})
	if err != nil {
		return "", apperrors.Parse(fmt.Errorf("failed to marshal request: %w", err))
	}

	reqURL, err := c.requestURL()
	if err != nil {
		return "", apperrors.BadRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.BadRequest(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	body, resp, err := httpclient.DoAndRead(c.client, req)
	if err != nil {
		return "", apperrors.Transient(fmt.Errorf("request failed: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, body)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", apperrors.Parse(fmt.Errorf("failed to decode response: %w", err))
	}
	return extractText(decoded)
}

func (c *RESTClient) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// extractText pulls candidates[0].content.parts[0].text. A success status
// with no usable candidate is a content failure, not a transport one, and is
// never retried.
func extractText(resp generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", apperrors.Malformed(fmt.Errorf("no candidates in response"))
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", apperrors.Malformed(fmt.Errorf("candidate has no content parts"))
	}
	text := strings.TrimSpace(parts[0].Text)
	if text == "" {
		return "", apperrors.Malformed(fmt.Errorf("candidate text is empty"))
	}
	return text, nil
}
