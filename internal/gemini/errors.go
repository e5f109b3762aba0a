package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kinosub/kinosub/internal/apperrors"
	"google.golang.org/api/googleapi"
)

// classifyStatus maps a non-success HTTP status to an error kind. The retry
// policy above this layer retries every transport kind, so the kind mostly
// drives log messages and backoff weighting.
func classifyStatus(code int, body []byte) error {
	cause := fmt.Errorf("status %d: %s", code, truncate(body, 512))
	switch {
	case code == http.StatusTooManyRequests:
		return apperrors.New(apperrors.KindRateLimit, fmt.Sprintf("rate limit exceeded (%d)", code), cause)
	case code >= 500:
		return apperrors.New(apperrors.KindTransient, fmt.Sprintf("upstream service error (%d)", code), cause)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperrors.New(apperrors.KindAuth, fmt.Sprintf("authentication failed (%d)", code), cause)
	default:
		return apperrors.New(apperrors.KindBadRequest, fmt.Sprintf("request rejected (%d)", code), cause)
	}
}

// classifySDKError maps generative-ai-go failures onto the same taxonomy.
func classifySDKError(err error) error {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("generate content failed: %w", err)

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return classifyStatus(gerr.Code, []byte(gerr.Message))
	}
	// Non-HTTP transport failures (DNS, socket, timeout) are transient.
	return apperrors.Transient(wrapped)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
