package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/xrdcollect/internal/model"
	"github.com/specialistvlad/xrdcollect/internal/registry"
	"github.com/specialistvlad/xrdcollect/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAppTest writes files into a temporary plan directory and creates an
// App pointed at it.
func setupAppTest(t *testing.T, files map[string]string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{PlanPaths: []string{root}, LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() { testutil.LogTestOutput(t, logs) })

	return NewApp(out, logs, cfg), out, logs
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, out, logs := setupAppTest(t, map[string]string{
		"setups.hcl": `
setup "A" {
  omega_end     = 10
  omega_step    = 2
  time_per_step = 1
}
`,
		"points.hcl": `
point "P1" {
  wide_scan = ["A"]
}
`,
	})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	expected := [][]model.ScanFlags{{{Wide: true}}}
	assert.Equal(t, expected, a.Registry().ExperimentState())

	rows := reportRows(out.String())
	assert.Contains(t, rows, []string{"1", "P1", "A", "wide", "5s"})

	assert.Contains(t, logs.String(), `msg="Plan loaded."`)
	assert.Contains(t, logs.String(), `msg="Registry populated."`)
	assert.NotContains(t, logs.String(), "nothing to collect")
}

func TestApp_RunWarnsOnEmptyQueue(t *testing.T) {
	t.Parallel()

	a, _, logs := setupAppTest(t, map[string]string{
		"plan.hcl": `
setup "A" {}
point "P1" {}
`,
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "nothing to collect")
}

func TestApp_LoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid hcl", func(t *testing.T) {
		a, _, _ := setupAppTest(t, map[string]string{"plan.hcl": `setup "A" {`})
		err := a.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load plan")
	})

	t.Run("unknown reference", func(t *testing.T) {
		a, out, _ := setupAppTest(t, map[string]string{"plan.hcl": `point "P" { step_scan = ["ghost"] }`})
		err := a.Run(context.Background())
		require.ErrorIs(t, err, registry.ErrSetupNotFound)
		assert.Contains(t, err.Error(), "failed to apply plan")
		assert.Empty(t, out.String(), "no report is written after a failed load")
	})
}
