package main

import (
	"fmt"

	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/srt"
	"github.com/kinosub/kinosub/internal/translator"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	lang          string
	batchSize     int
	workers       int
	model         string
	apiURL        string
	transport     string
	maxLineLength int
	logFilePath   string
	debug         bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate <input.srt> [output.srt]",
		Short: "Translate a subtitle file in concurrent batches",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	addTranslateFlags(cmd, &opts)
	return cmd
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().StringVar(&opts.lang, "lang", config.DefaultTargetLanguage, "Target language for translation")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", config.DefaultBatchSize, "Segments per translation request")
	cmd.Flags().IntVar(&opts.workers, "workers", config.DefaultWorkers, "Number of parallel requests")
	cmd.Flags().StringVar(&opts.model, "model", "", "Model name (overrides the configured endpoint)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Full generateContent endpoint URL")
	cmd.Flags().StringVar(&opts.transport, "transport", "rest", "API binding: rest or sdk")
	cmd.Flags().IntVar(&opts.maxLineLength, "max-line-length", 0, "Wrap translated cues longer than this many characters (0 disables)")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions) error {
	if err := setupLogging(opts.debug, opts.logFilePath); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	} else {
		outputPath = srt.OutputPath(inputPath, opts.lang)
	}

	cfg := config.Load()
	transport, closeTransport, err := buildTransport(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}
	defer closeTransport()

	client := translator.NewClient(transport, opts.lang)
	err = client.TranslateFile(cmd.Context(), inputPath, outputPath, translator.Options{
		BatchSize:     opts.batchSize,
		Workers:       opts.workers,
		MaxLineLength: opts.maxLineLength,
		OnProgress:    logTranslateProgress(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	return nil
}
