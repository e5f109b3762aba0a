package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/logger"
	"github.com/kinosub/kinosub/internal/media"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var output string
	var debug bool
	cmd := &cobra.Command{
		Use:   "extract <media file>",
		Short: "Extract transcription-ready audio (16kHz mono PCM WAV)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(debug, ""); err != nil {
				return err
			}
			inputPath := args[0]
			if output == "" {
				output = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".wav"
			}

			cfg := config.Load()
			extractor, err := media.NewExtractor(cfg.FFmpegPath)
			if err != nil {
				return err
			}
			err = extractor.Extract(cmd.Context(), inputPath, output, func(done, total time.Duration) {
				if total > 0 {
					logger.Debug("Extracting", "done", done.Round(time.Second), "total", total.Round(time.Second))
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", output)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output .wav file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
