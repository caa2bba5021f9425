package process

import (
	"context"
	"os/exec"

	"github.com/cli/safeexec"
)

// LookupExecutable resolves the first candidate found on PATH. The
// lookup excludes the current directory even on platforms where the
// stdlib includes it. Returns exec.ErrNotFound when no candidate is
// installed.
func LookupExecutable(ctx context.Context, candidates []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		path, err := safeexec.LookPath(candidate)
		if err == nil {
			return path, nil
		}
	}

	return "", exec.ErrNotFound
}
