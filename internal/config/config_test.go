package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("WHISPER_API_URL", "")
	t.Setenv("WHISPER_MODEL", "")
	t.Setenv("FFMPEG_PATH", "")

	cfg := Load()

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultWhisperURL, cfg.WhisperURL)
	assert.Equal(t, DefaultWhisperModel, cfg.WhisperModel)
	assert.Empty(t, cfg.FFmpegPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "https://example.org/v1/generate")
	t.Setenv("GEMINI_MODEL", "custom-model")
	t.Setenv("WHISPER_API_URL", "http://localhost:8080/v1/audio/transcriptions")
	t.Setenv("WHISPER_MODEL", "base")
	t.Setenv("FFMPEG_PATH", "/opt/ffmpeg/bin/ffmpeg")

	cfg := Load()

	assert.Equal(t, "https://example.org/v1/generate", cfg.Endpoint)
	assert.Equal(t, "custom-model", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1/audio/transcriptions", cfg.WhisperURL)
	assert.Equal(t, "base", cfg.WhisperModel)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.FFmpegPath)
}

func TestLoadIgnoresWhitespaceValues(t *testing.T) {
	t.Setenv("GEMINI_API_URL", "   ")
	cfg := Load()
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
}
