package puppet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/orbiqd/orbiqd-puppetbeacon/internal/pkg/process"
)

const envExecutablePath = "PUPPET_EXECUTABLE"

var (
	defaultExecutableCandidates = []string{"puppet"}

	semverPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)
)

// BinaryInfo describes a locally installed puppet executable.
type BinaryInfo struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Discover reports whether a puppet executable is installed on this
// host, honoring the PUPPET_EXECUTABLE override.
func Discover(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := locateExecutable(ctx)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return false, nil
	}

	return false, err
}

// DiscoverBinary locates the puppet executable and reads its version.
func DiscoverBinary(ctx context.Context) (BinaryInfo, error) {
	if err := ctx.Err(); err != nil {
		return BinaryInfo{}, err
	}

	path, err := locateExecutable(ctx)
	if err != nil {
		return BinaryInfo{}, err
	}

	output, err := exec.CommandContext(ctx, path, "--version").CombinedOutput()
	if err != nil {
		return BinaryInfo{}, fmt.Errorf("read puppet version: %w", err)
	}

	version := semverPattern.FindString(string(output))
	if version == "" {
		return BinaryInfo{}, fmt.Errorf("parse puppet version from output: %s", strings.TrimSpace(string(output)))
	}

	return BinaryInfo{Path: path, Version: version}, nil
}

func locateExecutable(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if envPath := os.Getenv(envExecutablePath); envPath != "" {
		absPath, err := filepath.Abs(envPath)
		if err != nil {
			return "", fmt.Errorf("resolve %s path: %w", envExecutablePath, err)
		}

		if _, err := os.Stat(absPath); err != nil {
			return "", fmt.Errorf("executable from %s not found: %w", envExecutablePath, err)
		}

		return absPath, nil
	}

	path, err := process.LookupExecutable(ctx, defaultExecutableCandidates)
	if err != nil {
		return "", fmt.Errorf("lookup puppet executable: %w", err)
	}

	return path, nil
}
