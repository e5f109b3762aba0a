package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kinosub/kinosub/internal/config"
)

func stubKeySeams(t *testing.T, key, source string, terminal bool, prompted string, promptErr error) {
	t.Helper()
	prevGetKey, prevIsTerminal, prevPrompt := getKey, isTerminal, promptForKey
	t.Cleanup(func() {
		getKey, isTerminal, promptForKey = prevGetKey, prevIsTerminal, prevPrompt
	})
	getKey = func() (string, string) { return key, source }
	isTerminal = func(int) bool { return terminal }
	promptForKey = func(string) (string, error) { return prompted, promptErr }
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("Keychain", func(t *testing.T) {
		stubKeySeams(t, "stored-key", "Keychain", false, "", nil)
		key, source, err := resolveAPIKey()
		if err != nil {
			t.Fatal(err)
		}
		if key != "stored-key" || source != "Keychain" {
			t.Errorf("got %q from %q", key, source)
		}
	})

	t.Run("Prompt", func(t *testing.T) {
		stubKeySeams(t, "", "", true, "typed-key", nil)
		key, source, err := resolveAPIKey()
		if err != nil {
			t.Fatal(err)
		}
		if key != "typed-key" || source != "Terminal Prompt" {
			t.Errorf("got %q from %q", key, source)
		}
	})

	t.Run("PromptError", func(t *testing.T) {
		stubKeySeams(t, "", "", true, "", errors.New("read failed"))
		if _, _, err := resolveAPIKey(); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("NoKeyNoTerminal", func(t *testing.T) {
		stubKeySeams(t, "", "", false, "", nil)
		_, _, err := resolveAPIKey()
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "kinosub env setup") {
			t.Errorf("error should point at env setup: %v", err)
		}
	})

	t.Run("EmptyPromptAnswer", func(t *testing.T) {
		stubKeySeams(t, "", "", true, "", nil)
		if _, _, err := resolveAPIKey(); err == nil {
			t.Fatal("expected an error for an empty key")
		}
	})
}

func TestBuildTransport(t *testing.T) {
	stubKeySeams(t, "k", "Keychain", false, "", nil)
	cfg := config.Config{Endpoint: config.DefaultEndpoint, Model: config.DefaultModel}

	t.Run("RESTDefault", func(t *testing.T) {
		transport, closer, err := buildTransport(context.Background(), cfg, &translateOptions{transport: "rest"})
		if err != nil {
			t.Fatal(err)
		}
		defer closer()
		if transport == nil {
			t.Fatal("nil transport")
		}
	})

	t.Run("UnknownTransport", func(t *testing.T) {
		_, _, err := buildTransport(context.Background(), cfg, &translateOptions{transport: "grpc"})
		if err == nil || !strings.Contains(err.Error(), "unknown transport") {
			t.Fatalf("error = %v", err)
		}
	})
}

func TestNewRootCmdWiring(t *testing.T) {
	cmd := newRootCmd()

	wanted := []string{"translate", "extract", "transcribe", "clean", "env"}
	for _, name := range wanted {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"lang", "batch-size", "workers", "output-dir", "src-lang", "keep-temp"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing root flag %q", flag)
		}
	}
	if cmd.Flags().Lookup("batch-size").DefValue != "30" {
		t.Errorf("batch-size default = %q, want 30", cmd.Flags().Lookup("batch-size").DefValue)
	}
	if cmd.Flags().Lookup("workers").DefValue != "10" {
		t.Errorf("workers default = %q, want 10", cmd.Flags().Lookup("workers").DefValue)
	}
	if cmd.Flags().Lookup("lang").DefValue != "Chinese" {
		t.Errorf("lang default = %q, want Chinese", cmd.Flags().Lookup("lang").DefValue)
	}
}
