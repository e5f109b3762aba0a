package main

import (
	"fmt"
	"os"

	"github.com/kinosub/kinosub/internal/auth"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the API key in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}
	cmd.AddCommand(
		newEnvSetupCmd(),
		newEnvStatusCmd(),
		newEnvDeleteCmd(),
	)
	return cmd
}

func newEnvSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Save the API key to the keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := promptForKey("Gemini API Key: ")
			if err != nil {
				return fmt.Errorf("error reading key: %w", err)
			}
			if key == "" {
				return fmt.Errorf("API key is required for setup")
			}
			if err := auth.SaveKey(key); err != nil {
				return fmt.Errorf("error saving key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved API key to keychain.")
			return nil
		},
	}
}

func newEnvStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show key status (default if no action given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}
}

func newEnvDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the key from the keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteKey(); err != nil {
				return fmt.Errorf("error deleting key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted API key from keychain.")
			return nil
		},
	}
}

func runEnvStatus(cmd *cobra.Command) error {
	if auth.HasKeychainKey() {
		fmt.Fprintln(cmd.OutOrStdout(), "API Key: Found (source=Keychain)")
		return nil
	}
	if os.Getenv("GEMINI_API_KEY") != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "API Key: Found (source=Environment)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "API Key: Not Found (keychain empty, GEMINI_API_KEY not set)")
	return nil
}
