package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinosub/kinosub/internal/config"
	"github.com/kinosub/kinosub/internal/whisper"
	"github.com/spf13/cobra"
)

func newTranscribeCmd() *cobra.Command {
	var outputDir string
	var srcLang string
	var debug bool
	cmd := &cobra.Command{
		Use:   "transcribe <audio file>",
		Short: "Transcribe audio into a raw subtitle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(debug, ""); err != nil {
				return err
			}
			audioPath := args[0]
			if outputDir == "" {
				outputDir = filepath.Dir(audioPath)
			}

			cfg := config.Load()
			client := whisper.NewClient(cfg.WhisperURL, cfg.WhisperModel, os.Getenv("WHISPER_API_KEY"))
			srtPath, err := client.Transcribe(cmd.Context(), audioPath, outputDir, srcLang)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", srtPath)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to save the subtitle file")
	cmd.Flags().StringVarP(&srcLang, "language", "l", "", "Language of the audio (auto-detects if omitted)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
