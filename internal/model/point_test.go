package model

import (
	"testing"

	"github.com/specialistvlad/xrdcollect/internal/itemid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSetups(names ...string) []*ExperimentSetup {
	seq := itemid.NewSequence(itemid.KindSetup)
	setups := make([]*ExperimentSetup, 0, len(names))
	for _, name := range names {
		setups = append(setups, NewExperimentSetup(seq.Next(), name, DefaultSetupParams()))
	}
	return setups
}

func requireAligned(t *testing.T, p *SamplePoint) {
	t.Helper()
	n := len(p.ExperimentSetups())
	require.Len(t, p.PerformStepScanForSetup(), n)
	require.Len(t, p.PerformWideScanForSetup(), n)
	require.Equal(t, n, p.SetupCount())
}

func TestSamplePoint_SetPosition(t *testing.T) {
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 1, 2, 3)
	p.SetPosition(4, 5, 6)

	assert.Equal(t, 4.0, p.X)
	assert.Equal(t, 5.0, p.Y)
	assert.Equal(t, 6.0, p.Z)
}

func TestSamplePoint_RegisterSetup(t *testing.T) {
	setups := newTestSetups("A", "B")
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0, 0, 0)

	for _, s := range setups {
		require.NoError(t, p.RegisterSetup(s))
	}

	requireAligned(t, p)
	assert.Equal(t, setups, p.ExperimentSetups())
	assert.Equal(t, []bool{false, false}, p.PerformStepScanForSetup())
	assert.Equal(t, []bool{false, false}, p.PerformWideScanForSetup())

	t.Run("twice is rejected", func(t *testing.T) {
		err := p.RegisterSetup(setups[0])
		require.ErrorIs(t, err, ErrSetupAlreadyRegistered)
		requireAligned(t, p)
		assert.Equal(t, 2, p.SetupCount())
	})

	t.Run("setup without id is rejected", func(t *testing.T) {
		err := p.RegisterSetup(&ExperimentSetup{Name: "anon"})
		require.ErrorIs(t, err, ErrSetupWithoutID)
		require.ErrorIs(t, p.RegisterSetup(nil), ErrSetupWithoutID)
	})
}

func TestSamplePoint_SetFlags(t *testing.T) {
	setups := newTestSetups("A", "B", "C")
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0, 0, 0)
	for _, s := range setups {
		require.NoError(t, p.RegisterSetup(s))
	}

	require.NoError(t, p.SetPerformStepScanSetup(1, true))
	require.NoError(t, p.SetPerformWideScanSetup(2, true))

	assert.Equal(t, []bool{false, true, false}, p.PerformStepScanForSetup())
	assert.Equal(t, []bool{false, false, true}, p.PerformWideScanForSetup())

	flags, err := p.ScanFlags(1)
	require.NoError(t, err)
	assert.Equal(t, ScanFlags{Step: true}, flags)

	// Clearing one flag leaves the other one alone.
	require.NoError(t, p.SetPerformWideScanSetup(1, true))
	require.NoError(t, p.SetPerformStepScanSetup(1, false))
	flags, err = p.ScanFlags(1)
	require.NoError(t, err)
	assert.Equal(t, ScanFlags{Wide: true}, flags)

	t.Run("out of range", func(t *testing.T) {
		for _, idx := range []int{-1, 3, 10} {
			err := p.SetPerformStepScanSetup(idx, true)
			require.ErrorIs(t, err, ErrIndexOutOfRange)

			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, idx, idxErr.Index)
			assert.Equal(t, 3, idxErr.Len)

			require.ErrorIs(t, p.SetPerformWideScanSetup(idx, true), ErrIndexOutOfRange)
			_, err = p.ScanFlags(idx)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		}
	})
}

func TestSamplePoint_UnregisterSetup(t *testing.T) {
	setups := newTestSetups("A", "B", "C")
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0, 0, 0)
	for _, s := range setups {
		require.NoError(t, p.RegisterSetup(s))
	}
	require.NoError(t, p.SetPerformStepScanSetup(2, true))
	require.NoError(t, p.SetPerformWideScanSetup(0, true))

	require.NoError(t, p.UnregisterSetup(setups[1]))

	requireAligned(t, p)
	assert.Equal(t, []*ExperimentSetup{setups[0], setups[2]}, p.ExperimentSetups())
	// Flags follow their setup, not their old position.
	assert.Equal(t, []bool{false, true}, p.PerformStepScanForSetup())
	assert.Equal(t, []bool{true, false}, p.PerformWideScanForSetup())

	t.Run("not registered", func(t *testing.T) {
		err := p.UnregisterSetup(setups[1])
		require.ErrorIs(t, err, ErrSetupNotRegistered)
		assert.Contains(t, err.Error(), "setup[1]")
		require.ErrorIs(t, p.UnregisterSetup(nil), ErrSetupNotRegistered)
	})

	t.Run("reregister starts cleared", func(t *testing.T) {
		require.NoError(t, p.UnregisterSetup(setups[0]))
		require.NoError(t, p.RegisterSetup(setups[0]))
		requireAligned(t, p)
		flags, err := p.ScanFlags(1)
		require.NoError(t, err)
		assert.Equal(t, ScanFlags{}, flags)
	})
}

func TestSamplePoint_ExperimentSetupsIsCopy(t *testing.T) {
	setups := newTestSetups("A")
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0, 0, 0)
	require.NoError(t, p.RegisterSetup(setups[0]))

	got := p.ExperimentSetups()
	got[0] = nil

	assert.Equal(t, setups[0], p.ExperimentSetups()[0])
}

func TestSamplePoint_String(t *testing.T) {
	setups := newTestSetups("A", "B")
	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0.5, 1, -2)
	for _, s := range setups {
		require.NoError(t, p.RegisterSetup(s))
	}
	require.NoError(t, p.SetPerformWideScanSetup(1, true))

	assert.Equal(t, "P1, 0.5, 1, -2, [false false], [false true]", p.String())
}

func TestCheckIndex(t *testing.T) {
	require.NoError(t, CheckIndex("setup", 0, 1))

	err := CheckIndex("sample point", 2, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.EqualError(t, err, "sample point index 2 out of range [0, 2)")
}

func TestSamplePoint_SetupsMatchByIdentity(t *testing.T) {
	// --- Arrange ---
	own := newTestSetups("A")[0]
	foreign := newTestSetups("Other")[0]
	require.Equal(t, own.ID(), foreign.ID())

	p := NewSamplePoint(itemid.New(itemid.KindPoint, 0), "P1", 0, 0, 0)
	require.NoError(t, p.RegisterSetup(own))
	require.NoError(t, p.SetPerformStepScanSetup(0, true))

	// --- Act ---
	unregisterErr := p.UnregisterSetup(foreign)
	registerErr := p.RegisterSetup(foreign)

	// --- Assert ---
	require.ErrorIs(t, unregisterErr, ErrSetupNotRegistered)
	require.ErrorIs(t, registerErr, ErrSetupIDConflict)
	assert.Equal(t, []*ExperimentSetup{own}, p.ExperimentSetups())
	assert.Equal(t, []bool{true}, p.PerformStepScanForSetup())
	requireAligned(t, p)
}

func TestSamplePoint_ZeroValue(t *testing.T) {
	var p SamplePoint
	setups := newTestSetups("A", "B")

	for _, s := range setups {
		require.NoError(t, p.RegisterSetup(s))
	}
	require.NoError(t, p.SetPerformWideScanSetup(1, true))

	requireAligned(t, &p)
	assert.Equal(t, []bool{false, true}, p.PerformWideScanForSetup())
	require.NoError(t, p.UnregisterSetup(setups[0]))
	assert.Equal(t, []bool{true}, p.PerformWideScanForSetup())
}
