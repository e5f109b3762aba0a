package main

import (
	"fmt"
	"os"

	"github.com/kinosub/kinosub/internal/cleanup"
	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/pipeline"
	"github.com/kinosub/kinosub/internal/version"
	"github.com/spf13/cobra"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "kinosub <media file>",
		Short: "End-to-end movie subtitle translator (extract, transcribe, clean, translate)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runPipeline(cmd, args[0], opts)
		},
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")

	addRootFlags(cmd, opts)

	cmd.AddCommand(
		newTranslateCmd(),
		newExtractCmd(),
		newTranscribeCmd(),
		newCleanCmd(),
		newEnvCmd(),
	)

	return cmd
}

type rootOptions struct {
	translateOptions
	outputDir  string
	sourceLang string
	keepTemp   bool
}

func addRootFlags(cmd *cobra.Command, opts *rootOptions) {
	addTranslateFlags(cmd, &opts.translateOptions)
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for the final subtitle (default: input file's directory)")
	cmd.Flags().StringVar(&opts.sourceLang, "src-lang", "", "Source language code of the audio (auto-detects if omitted)")
	cmd.Flags().BoolVar(&opts.keepTemp, "keep-temp", false, "Keep temporary files for debugging")
}

func runPipeline(cmd *cobra.Command, inputPath string, opts *rootOptions) error {
	if err := setupLogging(opts.debug, opts.logFilePath); err != nil {
		return err
	}

	cfg := config.Load()
	transport, closeTransport, err := buildTransport(cmd.Context(), cfg, &opts.translateOptions)
	if err != nil {
		return err
	}
	defer closeTransport()

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		InputPath:      inputPath,
		OutputDir:      opts.outputDir,
		TargetLanguage: opts.lang,
		SourceLanguage: opts.sourceLang,
		BatchSize:      opts.batchSize,
		Workers:        opts.workers,
		MaxLineLength:  opts.maxLineLength,
		KeepTemp:       opts.keepTemp,
		Transport:      transport,
		App:            cfg,
		OnProgress:     logTranslateProgress(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", result.OutputPath)
	return nil
}
