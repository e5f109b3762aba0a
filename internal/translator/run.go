package translator

import (
	"context"
	"fmt"

	"github.com/kinosub/kinosub/internal/batch"
	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/logger"
	"github.com/kinosub/kinosub/internal/srt"
)

// Options controls a full translation run.
type Options struct {
	BatchSize int
	Workers   int
	// MaxLineLength wraps translated cues longer than this many graphemes
	// into two lines. 0 disables wrapping.
	MaxLineLength int
	OnProgress    func(Progress)
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = config.DefaultBatchSize
	}
	if o.Workers <= 0 {
		o.Workers = config.DefaultWorkers
	}
	return o
}

// TranslateFile runs the whole translation: load, batch, dispatch,
// reassemble, save. outputPath may equal inputPath for an in-place run. An
// empty input file is saved unchanged and is not an error. The run always
// produces an output of the same segment count; per-batch failures surface
// as marker-prefixed lines, never as a halted pipeline.
func (c *Client) TranslateFile(ctx context.Context, inputPath, outputPath string, opts Options) error {
	opts = opts.withDefaults()

	segments, err := srt.Load(inputPath)
	if err != nil {
		return err
	}
	if err := srt.Validate(segments); err != nil {
		return fmt.Errorf("invalid subtitle file: %w", err)
	}
	if len(segments) == 0 {
		logger.Warn("No subtitles found to translate", "path", inputPath)
		return srt.Save(outputPath, segments)
	}

	texts := srt.FlatTexts(segments)
	batches := batch.Split(texts, opts.BatchSize)
	logger.Info("Translating",
		"segments", len(segments),
		"batches", len(batches),
		"workers", opts.Workers,
		"language", c.targetLang,
	)

	results := c.TranslateAll(ctx, batches, opts.Workers, opts.OnProgress)

	Reassemble(segments, results)
	if opts.MaxLineLength > 0 {
		srt.WrapLines(segments, opts.MaxLineLength)
	}

	logger.Info("Saving translated subtitles", "path", outputPath)
	return srt.Save(outputPath, segments)
}
