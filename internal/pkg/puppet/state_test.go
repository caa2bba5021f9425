package puppet

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPaths = Paths{
	SummaryFile:  "/var/state/last_run_summary.yaml",
	RunLock:      "/var/state/agent_catalog_run.lock",
	DisabledLock: "/var/state/agent_disabled.lock",
}

func newTestState(t *testing.T) (*AgentState, afero.Fs) {
	t.Helper()

	memFs := afero.NewMemMapFs()
	state, err := NewAgentState(memFs, testPaths)
	require.NoError(t, err)

	return state, memFs
}

func TestNewAgentState_DefaultPaths(t *testing.T) {
	state, err := NewAgentState(afero.NewMemMapFs(), Paths{})
	require.NoError(t, err)

	assert.Equal(t, "/opt/puppetlabs/puppet/cache/state/last_run_summary.yaml", state.Paths.SummaryFile)
	assert.Equal(t, "/opt/puppetlabs/puppet/cache/state/agent_catalog_run.lock", state.Paths.RunLock)
	assert.Equal(t, "/opt/puppetlabs/puppet/cache/state/agent_disabled.lock", state.Paths.DisabledLock)
	assert.Equal(t, DefaultPaths(), state.Paths)
}

func TestNewAgentState_EnvOverride(t *testing.T) {
	t.Setenv("PUPPETBEACON_SUMMARY_FILE_PATH", "/srv/puppet/summary.yaml")

	state, err := NewAgentState(afero.NewMemMapFs(), Paths{})
	require.NoError(t, err)

	assert.Equal(t, "/srv/puppet/summary.yaml", state.Paths.SummaryFile)
	assert.Equal(t, "/opt/puppetlabs/puppet/cache/state/agent_catalog_run.lock", state.Paths.RunLock)
}

func TestAgentState_Disabled(t *testing.T) {
	ctx := context.Background()

	t.Run("no lock", func(t *testing.T) {
		state, _ := newTestState(t)

		assert.False(t, state.Disabled(ctx))
		assert.Nil(t, state.DisabledMessage)
	})

	t.Run("lock with message", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock,
			[]byte(`disabled_message: "maintenance"`), 0644))

		assert.True(t, state.Disabled(ctx))
		require.NotNil(t, state.DisabledMessage)
		assert.Equal(t, "maintenance", *state.DisabledMessage)
	})

	t.Run("lock without message", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock, []byte(`{}`), 0644))

		assert.True(t, state.Disabled(ctx))
		assert.Nil(t, state.DisabledMessage)
	})

	t.Run("lock that is not valid YAML", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock,
			[]byte("{invalid: [yaml"), 0644))

		assert.True(t, state.Disabled(ctx))
		assert.Nil(t, state.DisabledMessage)
	})

	t.Run("message survives lock removal", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock,
			[]byte(`disabled_message: "maintenance"`), 0644))
		require.True(t, state.Disabled(ctx))

		require.NoError(t, memFs.Remove(testPaths.DisabledLock))

		// The message keeps its last value after the lock disappears.
		assert.False(t, state.Disabled(ctx))
		require.NotNil(t, state.DisabledMessage)
		assert.Equal(t, "maintenance", *state.DisabledMessage)
	})

	t.Run("message overwritten on every evaluation while locked", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock,
			[]byte(`disabled_message: "maintenance"`), 0644))
		require.True(t, state.Disabled(ctx))

		require.NoError(t, afero.WriteFile(memFs, testPaths.DisabledLock, []byte(`{}`), 0644))

		assert.True(t, state.Disabled(ctx))
		assert.Nil(t, state.DisabledMessage)
	})
}

func TestAgentState_RunSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		state, _ := newTestState(t)

		assert.Empty(t, state.RunSummary(ctx))
	})

	t.Run("empty file", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.SummaryFile, []byte(""), 0644))

		assert.Empty(t, state.RunSummary(ctx))
	})

	t.Run("invalid YAML", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.SummaryFile,
			[]byte("time: [unclosed"), 0644))

		assert.Empty(t, state.RunSummary(ctx))
	})

	t.Run("valid document", func(t *testing.T) {
		state, memFs := newTestState(t)
		require.NoError(t, afero.WriteFile(memFs, testPaths.SummaryFile, []byte(`
time:
  total: 42
events:
  failure: 1
`), 0644))

		summary := state.RunSummary(ctx)
		require.NotEmpty(t, summary)

		timing, ok := summary["time"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(42), timing["total"])
	})
}
