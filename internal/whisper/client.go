// Package whisper transcribes audio through an OpenAI-compatible
// speech-to-text HTTP endpoint, producing a raw SRT file.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kinosub/kinosub/internal/files"
	"github.com/kinosub/kinosub/internal/httpclient"
	"github.com/kinosub/kinosub/internal/logger"
)

// transcriptionTimeout is generous: a feature-length movie takes a while
// even on a local GPU server.
const transcriptionTimeout = 30 * time.Minute

// Client calls a transcription endpoint (a local whisper server or the
// hosted API, both speak the same multipart contract).
type Client struct {
	url        string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a transcription client. apiKey may be empty for local
// servers that do not authenticate.
func NewClient(url, model, apiKey string) *Client {
	return &Client{
		url:        url,
		model:      model,
		apiKey:     apiKey,
		httpClient: httpclient.NewClient(transcriptionTimeout),
	}
}

// Transcribe uploads the audio file and writes the returned SRT into
// outputDir, named after the audio file. language may be empty for
// auto-detection. Returns the path of the written SRT.
func (c *Client) Transcribe(ctx context.Context, audioPath, outputDir, language string) (string, error) {
	audioFile, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer audioFile.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, audioFile); err != nil {
		return "", fmt.Errorf("failed to buffer audio file: %w", err)
	}
	writer.WriteField("model", c.model)
	writer.WriteField("response_format", "srt")
	if language != "" && language != "auto" {
		writer.WriteField("language", language)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logger.Info("Transcribing audio", "file", filepath.Base(audioPath), "model", c.model)

	body, resp, err := httpclient.DoAndRead(c.httpClient, req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	srtPath := filepath.Join(outputDir, stem+".srt")
	if err := files.AtomicWrite(srtPath, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}
	logger.Info("Transcription complete", "path", srtPath)
	return srtPath, nil
}
