// Package translator implements the concurrent batch-translation engine:
// one retrying client per batch, a bounded worker pool over all batches, and
// deterministic reassembly keyed by batch start offset.
package translator

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/kinosub/kinosub/internal/apperrors"
	"github.com/kinosub/kinosub/internal/batch"
	"github.com/kinosub/kinosub/internal/gemini"
	"github.com/kinosub/kinosub/internal/logger"
)

// Failure markers embedded into output lines. A failed batch degrades to
// marked source text instead of aborting the run, so downstream positions
// stay aligned and failures are visible in the output file itself.
const (
	MarkerTransport = "[ERROR] "
	MarkerAPI       = "[API ERROR] "
	MarkerParse     = "[PARSE ERROR] "
)

const (
	maxAttempts = 5
	baseDelay   = 2 * time.Second
)

// indexPrefix matches enumeration echoes like "[3] ", "3. " or "12: " that
// the model sometimes prepends despite instructions not to.
var indexPrefix = regexp.MustCompile(`^\[?\d+\]?\s*[.:]?\s*`)

// Client translates one batch at a time against a transport, guaranteeing a
// result of the correct length on every code path.
type Client struct {
	transport  gemini.Transport
	targetLang string

	// sleep is swapped in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration)
}

// NewClient creates a batch translation client for the target language.
func NewClient(transport gemini.Transport, targetLang string) *Client {
	return &Client{
		transport:  transport,
		targetLang: targetLang,
		sleep:      sleepCtx,
	}
}

// Result is the outcome of translating one batch. len(Lines) always equals
// the originating batch's count, failure or not.
type Result struct {
	Start int
	Lines []string
}

// TranslateBatch translates a single batch. It never returns an error:
// transport failures are retried with exponential backoff and degrade to
// marker-prefixed source lines once the budget is exhausted; unusable
// responses degrade immediately. The per-attempt timeout lives in the
// transport.
func (c *Client) TranslateBatch(ctx context.Context, b batch.Batch) (res Result) {
	res = Result{Start: b.Start, Lines: []string{}}
	if b.Count() == 0 {
		return res
	}

	// A malformed response must never abort the run; anything unexpected
	// while parsing degrades this batch only.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Batch translation panicked", "start", b.Start, "panic", r)
			res.Lines = markedLines(MarkerParse, b.Texts)
		}
	}()

	prompt := buildPrompt(b.Texts, c.targetLang)

	var text string
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err = c.transport.Generate(ctx, prompt)
		if err == nil {
			break
		}
		if !apperrors.IsRetryable(err) {
			logger.Warn("Batch returned unusable response", "start", b.Start, "error", err)
			res.Lines = markedLines(markerFor(err), b.Texts)
			return res
		}
		if attempt < maxAttempts-1 {
			delay := backoffDelay(attempt)
			logger.Warn("Batch attempt failed, retrying",
				"start", b.Start, "attempt", attempt+1, "delay", delay, "error", err)
			c.sleep(ctx, delay)
		}
	}
	if err != nil {
		logger.Error("Batch failed after maximum retries",
			"start", b.Start, "attempts", maxAttempts, "error", err)
		res.Lines = markedLines(MarkerTransport, b.Texts)
		return res
	}

	res.Lines = reconcile(parseLines(text), b.Texts)
	return res
}

// backoffDelay returns baseDelay * 2^attempt: 2s, 4s, 8s, 16s between the
// five attempts. No jitter; the worker pool already spreads request timing.
func backoffDelay(attempt int) time.Duration {
	return baseDelay << attempt
}

// parseLines splits the generated block into non-empty lines and strips any
// echoed index markers.
func parseLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, indexPrefix.ReplaceAllString(line, ""))
	}
	return lines
}

// reconcile pads or truncates lines so the result matches the batch count
// exactly. A count mismatch is not an error: strict positional alignment is
// required downstream and must never fail the run.
func reconcile(lines []string, texts []string) []string {
	count := len(texts)
	if len(lines) > count {
		return lines[:count]
	}
	for len(lines) < count {
		lines = append(lines, "")
	}
	return lines
}

func markedLines(marker string, texts []string) []string {
	lines := make([]string, len(texts))
	for i, t := range texts {
		lines[i] = marker + t
	}
	return lines
}

func markerFor(err error) string {
	if kind, ok := apperrors.KindOf(err); ok && kind == apperrors.KindParse {
		return MarkerParse
	}
	return MarkerAPI
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
