// Package apperrors tags errors with a coarse kind so callers can decide
// between retrying, degrading, and failing fast without string matching.
package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	// KindTransient covers network-level failures and 5xx upstream errors.
	KindTransient Kind = "transient"
	// KindRateLimit is a 429 from the upstream API.
	KindRateLimit Kind = "rate_limit"
	// KindAuth is a 401/403 from the upstream API.
	KindAuth Kind = "auth"
	// KindBadRequest is any other non-success status.
	KindBadRequest Kind = "bad_request"
	// KindMalformed is a success status whose body carries no usable
	// translation (missing/empty candidates). Never retried.
	KindMalformed Kind = "malformed"
	// KindParse is a success status whose body could not be decoded at all.
	// Never retried.
	KindParse Kind = "parse"
)

type Error struct {
	Kind Kind
	// Message is safe for user-facing output and logs.
	Message string
	// Cause keeps the original error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return defaultMessage(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultMessage(kind Kind) string {
	switch kind {
	case KindTransient:
		return "temporary upstream error"
	case KindRateLimit:
		return "rate limit exceeded"
	case KindAuth:
		return "authentication failed"
	case KindBadRequest:
		return "request rejected by upstream API"
	case KindMalformed:
		return "upstream response carried no usable content"
	case KindParse:
		return "upstream response could not be decoded"
	default:
		return "request failed"
	}
}

func New(kind Kind, message string, cause error) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = defaultMessage(kind)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func Transient(err error) error  { return New(KindTransient, "", err) }
func RateLimit(err error) error  { return New(KindRateLimit, "", err) }
func Auth(err error) error       { return New(KindAuth, "", err) }
func BadRequest(err error) error { return New(KindBadRequest, "", err) }
func Malformed(err error) error  { return New(KindMalformed, "", err) }
func Parse(err error) error      { return New(KindParse, "", err) }

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// IsRetryable reports whether the error is worth another attempt.
// All transport-level failures are retried, including non-429 4xx statuses:
// the upstream occasionally returns spurious 400s under load, so the retry
// budget is spent before degrading. Semantic failures (malformed or
// undecodable success responses) are deterministic and are not retried.
// Unclassified errors are treated as transient.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return err != nil
	}
	return e.Kind != KindMalformed && e.Kind != KindParse
}

func IsRateLimit(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindRateLimit
}
