package control

import (
	"testing"

	"github.com/momentics/hioload-alloc/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStoreSnapshotAndReload(t *testing.T) {
	cs := NewConfigStore()
	assert.Empty(t, cs.GetSnapshot())

	calls := 0
	cs.OnReload(func() { calls++ })
	require.NoError(t, cs.SetConfig(map[string]any{"k": 1, KeyTracingHistory: 8}))
	assert.Equal(t, 1, calls)

	snap := cs.GetSnapshot()
	assert.Equal(t, 1, snap["k"])
	snap["k"] = 99
	assert.Equal(t, 1, cs.GetSnapshot()["k"])

	assert.Equal(t, 8, cs.Int(KeyTracingHistory, DefaultTracingHistory))
	assert.Equal(t, DefaultTracingLogFailures, cs.Bool(KeyTracingLogFailures, DefaultTracingLogFailures))
}

func TestConfigStoreRejectsInvalid(t *testing.T) {
	cs := NewConfigStore()
	calls := 0
	cs.OnReload(func() { calls++ })

	err := cs.SetConfig(map[string]any{"k": 1, KeyTracingHistory: -1})
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	err = cs.SetConfig(map[string]any{KeyTracingLogFailures: "yes"})
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	assert.Empty(t, cs.GetSnapshot())
	assert.Zero(t, calls)
}

func TestMetricsRegistry(t *testing.T) {
	mr := NewMetricsRegistry()
	assert.True(t, mr.Updated().IsZero())
	mr.Set("a", 1)
	mr.SetMany(map[string]any{"b": 2, "c": 3})
	assert.Equal(t, map[string]any{"a": 1, "b": 2, "c": 3}, mr.GetSnapshot())
	assert.False(t, mr.Updated().IsZero())
}

func TestDebugProbesAndPlatform(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("x", func() any { return "y" })
	RegisterPlatformProbes(dp)

	state := dp.DumpState()
	assert.Equal(t, "y", state["x"])
	assert.Greater(t, state["platform.cpus"].(int), 0)
}
