package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"time"
)

// lineMatch matches the git output
var lineMatch = regexp.MustCompile("(.*)\r?\n?$")

// GitAvailable returns true when a git binary is on the PATH
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// SimpleGitExec runs a git command and returns the output in a easy
// to process way. Arguments are passed through as-is, paths with
// spaces are fine
func SimpleGitExec(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Env = os.Environ()
	out, err := cmd.Output()
	cleanOut := lineMatch.FindStringSubmatch(string(out))
	return cleanOut[1], err
}

// OpenPath opens the given file or directory with whatever the
// platform considers the default application for it
func OpenPath(path string) error {
	// 15 seconds timeout to launch the opener
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch runtime.GOOS {
	case "linux":
		if _, err := exec.LookPath("xdg-open"); err == nil {
			return exec.CommandContext(ctx, "xdg-open", path).Run()
		}
		if editor := os.Getenv("EDITOR"); editor != "" {
			cmd := exec.CommandContext(ctx, editor, path)
			cmd.Stdin = os.Stdin
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		}
		return fmt.Errorf("no opener found, please open %s manually", path)
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path).Run()
	case "darwin":
		return exec.CommandContext(ctx, "open", path).Run()
	default:
		return fmt.Errorf("unsupported platform")
	}
}

// ReadJSONFile parses the given file into i
func ReadJSONFile(filename string, i interface{}) error {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, i)
}

// WriteJSONFile writes i to the given file as indented json
func WriteJSONFile(filename string, i interface{}) error {
	buf, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(buf, '\n'), 0644)
}
