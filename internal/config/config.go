// Package config resolves runtime configuration from a .env file and the
// process environment.
//
// Environment variables:
//   - GEMINI_API_KEY: translation API key (keychain takes precedence)
//   - GEMINI_API_URL: generateContent endpoint URL
//   - GEMINI_MODEL: model name for the SDK transport
//   - WHISPER_API_URL: OpenAI-compatible transcription endpoint
//   - WHISPER_MODEL: transcription model name
//   - FFMPEG_PATH: explicit ffmpeg binary location
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultEndpoint is the Google AI Studio generateContent endpoint.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-3-flash-preview:generateContent"
	// DefaultModel is used when the endpoint is derived from a model name
	// (SDK transport) instead of a full URL.
	DefaultModel = "gemini-3-flash-preview"

	DefaultTargetLanguage = "Chinese"
	DefaultBatchSize      = 30
	DefaultWorkers        = 10

	DefaultWhisperURL   = "http://localhost:9000/v1/audio/transcriptions"
	DefaultWhisperModel = "large-v3-turbo"

	// Audio profile expected by the transcription models.
	AudioSampleRate = 16000
	AudioChannels   = 1
	AudioCodec      = "pcm_s16le"
)

// Config carries endpoint and tool locations. Per-run knobs (language, batch
// size, workers) stay on the CLI flags.
type Config struct {
	Endpoint     string
	Model        string
	WhisperURL   string
	WhisperModel string
	FFmpegPath   string
}

// Load reads an optional .env file from the working directory and resolves
// the configuration. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Endpoint:     getenv("GEMINI_API_URL", DefaultEndpoint),
		Model:        getenv("GEMINI_MODEL", DefaultModel),
		WhisperURL:   getenv("WHISPER_API_URL", DefaultWhisperURL),
		WhisperModel: getenv("WHISPER_MODEL", DefaultWhisperModel),
		FFmpegPath:   strings.TrimSpace(os.Getenv("FFMPEG_PATH")),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
