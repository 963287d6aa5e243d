package profile

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const pprofTimeout = 30 * time.Second

// DefaultNodeCount limits how many rows pprof renders into the top table.
const DefaultNodeCount = 50

var textExtensions = []string{".txt", ".top", ".out"}

// IsTextInput reports whether the path points at an already-rendered top
// table rather than a binary profile that pprof must render first.
func IsTextInput(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range textExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ProfileName returns the profile's base name without extensions, the stem
// used for the default report file name. "cpu.pb.gz" becomes "cpu".
func ProfileName(path string) string {
	name := filepath.Base(path)
	for {
		ext := filepath.Ext(name)
		if ext == "" {
			return name
		}
		name = strings.TrimSuffix(name, ext)
	}
}

// LoadTopOutput obtains the raw top-table text for the given input: text
// files are read directly, anything else is rendered by running
// `go tool pprof -top`. This is the only blocking collaborator of the
// analysis pipeline; the pipeline itself consumes the returned string.
func LoadTopOutput(ctx context.Context, path string, nodeCount int) (string, error) {
	if IsTextInput(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading top table: %w", err)
		}
		return string(data), nil
	}

	return RunPprofTop(ctx, path, nodeCount)
}

// RunPprofTop invokes the pprof tool on a binary profile and returns its
// rendered top table.
func RunPprofTop(ctx context.Context, path string, nodeCount int) (string, error) {
	if nodeCount <= 0 {
		nodeCount = DefaultNodeCount
	}

	ctx, cancel := context.WithTimeout(ctx, pprofTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "tool", "pprof", "-top",
		fmt.Sprintf("-nodecount=%d", nodeCount), path)

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("pprof failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("running pprof: %w", err)
	}

	return string(out), nil
}
