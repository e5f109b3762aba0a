// Package pipeline runs the end-to-end flow: extract audio, transcribe,
// clean, translate, and save the final subtitle next to the input.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kinosub/kinosub/internal/clean"
	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/gemini"
	"github.com/kinosub/kinosub/internal/language"
	"github.com/kinosub/kinosub/internal/logger"
	"github.com/kinosub/kinosub/internal/media"
	"github.com/kinosub/kinosub/internal/srt"
	"github.com/kinosub/kinosub/internal/translator"
	"github.com/kinosub/kinosub/internal/whisper"
)

// Options configures a full pipeline run.
type Options struct {
	InputPath      string
	OutputDir      string // defaults to the input file's directory
	TargetLanguage string
	SourceLanguage string // empty auto-detects during transcription
	BatchSize      int
	Workers        int
	MaxLineLength  int
	KeepTemp       bool
	Transport      gemini.Transport
	App            config.Config
	OnProgress     func(translator.Progress)
}

// Result reports where the pipeline wrote its output.
type Result struct {
	OutputPath string
}

// Run executes extract → transcribe → clean → translate. Intermediate files
// live in a temporary workspace removed on completion unless KeepTemp is set.
func Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()

	inputPath, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve input path: %w", err)
	}
	if _, err := os.Stat(inputPath); err != nil {
		return Result{}, fmt.Errorf("input file not found: %w", err)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	workspace, err := makeWorkspace(opts.KeepTemp)
	if err != nil {
		return Result{}, err
	}
	if !opts.KeepTemp {
		defer os.RemoveAll(workspace)
	} else {
		logger.Warn("Keeping temporary files", "path", workspace)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	// 1. Extract audio.
	logger.Info("Step 1: Extract audio")
	extractor, err := media.NewExtractor(opts.App.FFmpegPath)
	if err != nil {
		return Result{}, err
	}
	wavPath := filepath.Join(workspace, base+".wav")
	if err := extractor.Extract(ctx, inputPath, wavPath, logExtractProgress()); err != nil {
		return Result{}, err
	}

	// 2. Transcribe.
	logger.Info("Step 2: Transcribe audio")
	transcriber := whisper.NewClient(opts.App.WhisperURL, opts.App.WhisperModel, os.Getenv("WHISPER_API_KEY"))
	rawSRT, err := transcriber.Transcribe(ctx, wavPath, workspace, opts.SourceLanguage)
	if err != nil {
		return Result{}, err
	}

	// 3. Clean.
	logger.Info("Step 3: Clean subtitles")
	cleanedSRT := filepath.Join(workspace, base+".cleaned.srt")
	if err := clean.File(rawSRT, cleanedSRT); err != nil {
		return Result{}, err
	}
	warnIfAlreadyTranslated(cleanedSRT, opts.TargetLanguage)

	// 4. Translate.
	logger.Info("Step 4: Translate", "language", opts.TargetLanguage)
	outPath := srt.OutputPath(filepath.Join(outputDir, base+".srt"), opts.TargetLanguage)
	client := translator.NewClient(opts.Transport, opts.TargetLanguage)
	err = client.TranslateFile(ctx, cleanedSRT, outPath, translator.Options{
		BatchSize:     opts.BatchSize,
		Workers:       opts.Workers,
		MaxLineLength: opts.MaxLineLength,
		OnProgress:    opts.OnProgress,
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("All done", "elapsed", time.Since(start).Round(time.Second), "output", outPath)
	return Result{OutputPath: outPath}, nil
}

// makeWorkspace creates the temp directory for intermediate files. Kept
// workspaces get a UUID-suffixed name so repeated debug runs do not collide.
func makeWorkspace(keep bool) (string, error) {
	if keep {
		dir := filepath.Join(os.TempDir(), "kinosub-"+uuid.NewString()[:8])
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create workspace: %w", err)
		}
		return dir, nil
	}
	dir, err := os.MkdirTemp("", "kinosub-")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	return dir, nil
}

func logExtractProgress() func(done, total time.Duration) {
	var lastPct int = -1
	return func(done, total time.Duration) {
		if total <= 0 {
			return
		}
		pct := int(done * 100 / total)
		// Log in 10% steps to keep output readable.
		if pct/10 > lastPct/10 || pct == 100 && lastPct != 100 {
			lastPct = pct
			logger.Info("Extracting audio", "progress", fmt.Sprintf("%d%%", pct))
		}
	}
}

func warnIfAlreadyTranslated(path, targetLang string) {
	segments, err := srt.Load(path)
	if err != nil {
		return
	}
	if detected, ok := language.DetectName(srt.FlatTexts(segments)); ok {
		logger.Debug("Detected source language", "detected", detected)
		if language.Matches(detected, targetLang) {
			logger.Warn("Source already appears to be in the target language",
				"detected", detected, "target", targetLang)
		}
	}
}
