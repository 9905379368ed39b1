package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSimpleGitExecKeepsArgsIntact(t *testing.T) {
	if !GitAvailable() {
		t.Skip("git is not installed")
	}

	// a directory with a space in it must arrive at git as one argument
	dir := filepath.Join(t.TempDir(), "with space")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := SimpleGitExec("init", dir); err != nil {
		t.Fatalf("git init failed: %v", err)
	}

	out, err := SimpleGitExec("-C", dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		t.Fatalf("rev-parse failed: %v", err)
	}
	if out != "true" {
		t.Errorf("expected \"true\", got %q", out)
	}
}
