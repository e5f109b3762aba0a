package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMakeWorkspace(t *testing.T) {
	t.Run("Temporary", func(t *testing.T) {
		dir, err := makeWorkspace(false)
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(dir)

		if !strings.HasPrefix(filepath.Base(dir), "kinosub-") {
			t.Errorf("workspace name = %q", filepath.Base(dir))
		}
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("workspace not created: %v", err)
		}
	})

	t.Run("Kept", func(t *testing.T) {
		a, err := makeWorkspace(true)
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(a)
		b, err := makeWorkspace(true)
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(b)

		if a == b {
			t.Errorf("kept workspaces collide: %q", a)
		}
	})
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(t.Context(), Options{
		InputPath:      filepath.Join(t.TempDir(), "missing.mkv"),
		TargetLanguage: "Chinese",
	})
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !strings.Contains(err.Error(), "input file not found") {
		t.Errorf("error = %v", err)
	}
}
