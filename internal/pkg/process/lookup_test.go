package process

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExecutable_NotFound(t *testing.T) {
	_, err := LookupExecutable(context.Background(), []string{"puppetbeacon-no-such-binary"})
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestLookupExecutable_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LookupExecutable(ctx, []string{"sh"})
	require.ErrorIs(t, err, context.Canceled)
}
