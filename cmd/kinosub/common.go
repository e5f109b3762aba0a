package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kinosub/kinosub/internal/auth"
	"github.com/kinosub/kinosub/internal/cleanup"
	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/gemini"
	"github.com/kinosub/kinosub/internal/logger"
	"github.com/kinosub/kinosub/internal/translator"
	"golang.org/x/term"
)

// Seams for tests.
var (
	isTerminal   = term.IsTerminal
	getKey       = auth.GetKey
	promptForKey = auth.PromptForAPIKey
)

// resolveAPIKey finds the API key: keychain, then environment (a .env file
// has already been folded in by config.Load), then an interactive prompt.
// A missing key is fatal before any network activity.
func resolveAPIKey() (string, string, error) {
	if key, source := getKey(); key != "" {
		return key, source, nil
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("Gemini API Key: ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if key != "" {
			return key, "Terminal Prompt", nil
		}
	}

	return "", "", fmt.Errorf("API key is required; set it with 'kinosub env setup' or GEMINI_API_KEY")
}

// buildTransport resolves the API key and constructs the chosen transport.
// The returned func releases transport resources (the SDK holds a gRPC
// connection).
func buildTransport(ctx context.Context, cfg config.Config, opts *translateOptions) (gemini.Transport, func(), error) {
	key, source, err := resolveAPIKey()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using API key", "source", source)

	switch opts.transport {
	case "sdk":
		model := opts.model
		if model == "" {
			model = cfg.Model
		}
		client, err := gemini.NewSDKClient(ctx, key, model)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { client.Close() }, nil
	case "rest", "":
		endpoint := opts.apiURL
		if endpoint == "" {
			if opts.model != "" {
				endpoint = gemini.EndpointForModel(opts.model)
			} else {
				endpoint = cfg.Endpoint
			}
		}
		return gemini.NewRESTClient(endpoint, key), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown transport %q (expected rest or sdk)", opts.transport)
	}
}

// setupLogging configures the global logger, optionally teeing JSONL records
// into a file whose handle is closed at exit.
func setupLogging(debug bool, logFilePath string) error {
	level := logger.LevelInfo
	if debug {
		level = logger.LevelDebug
	}
	var logFile io.Writer
	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFile = f
	}
	logger.Init(level, logFile)
	return nil
}

// logTranslateProgress logs each completed batch.
func logTranslateProgress() func(translator.Progress) {
	return func(p translator.Progress) {
		logger.Info("Translated batch", "completed", p.Completed, "total", p.Total)
	}
}
