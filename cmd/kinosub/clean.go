package main

import (
	"fmt"

	"github.com/kinosub/kinosub/internal/clean"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	var output string
	var debug bool
	cmd := &cobra.Command{
		Use:   "clean <input.srt>",
		Short: "Remove SDH tags, HTML markup, and recognizer hallucinations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(debug, ""); err != nil {
				return err
			}
			inputPath := args[0]
			if output == "" {
				output = inputPath // in place
			}
			if err := clean.File(inputPath, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", output)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output subtitle file (defaults to in-place)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
