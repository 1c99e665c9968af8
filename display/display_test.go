package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinelab/vitrine/coords"
	"github.com/vitrinelab/vitrine/display"
	"github.com/vitrinelab/vitrine/waveform"
)

func TestRegistry_CanonicalStates(t *testing.T) {
	all := display.States()
	require.Len(t, all, 7)

	want := []string{
		"luxury_isolation",
		"theatrical_drama",
		"abundance_wall",
		"editorial_minimal",
		"immersive_spectacle",
		"curated_collection",
		"narrative_journey",
	}
	assert.Equal(t, want, display.StateNames())
	for i, s := range all {
		assert.Equal(t, want[i], s.Name)
	}

	lux, err := display.StateByName("luxury_isolation")
	require.NoError(t, err)
	assert.Equal(t, coords.Vector{0.10, 0.40, 0.35, 0.85, 0.90}, lux.Coords)
}

func TestRegistry_Presets(t *testing.T) {
	want := []string{
		"seasonal_transition",
		"day_night_cycle",
		"intimacy_sweep",
		"drama_pulse",
		"narrative_shift",
	}
	assert.Equal(t, want, display.PresetNames())

	sweep, err := display.PresetByName("intimacy_sweep")
	require.NoError(t, err)
	assert.Equal(t, "abundance_wall", sweep.StateA)
	assert.Equal(t, "luxury_isolation", sweep.StateB)
	assert.Equal(t, waveform.Triangular, sweep.Pattern)
	assert.Equal(t, 2, sweep.NumCycles)
	assert.Equal(t, 30, sweep.StepsPerCycle)

	// Every preset must reference registered states.
	for _, p := range display.Presets() {
		_, err := display.StateByName(p.StateA)
		assert.NoError(t, err, "preset %s state_a", p.Name)
		_, err = display.StateByName(p.StateB)
		assert.NoError(t, err, "preset %s state_b", p.Name)
		assert.True(t, p.Pattern.Valid(), "preset %s pattern", p.Name)
	}
}

func TestRegistry_UnknownIdentifiers(t *testing.T) {
	_, err := display.StateByName("disco_chaos")
	require.Error(t, err)
	assert.ErrorIs(t, err, display.ErrUnknownState)
	assert.Contains(t, err.Error(), "available", "error must list the registered names")

	_, err = display.PresetByName("disco_chaos")
	assert.ErrorIs(t, err, display.ErrUnknownPreset)
}

func TestRegistry_CopyIsolation(t *testing.T) {
	display.States()[0].Name = "tampered"
	assert.Equal(t, "luxury_isolation", display.States()[0].Name)

	display.Presets()[0].NumCycles = 99
	assert.Equal(t, 3, display.Presets()[0].NumCycles)
}

func TestSequence_Defaults(t *testing.T) {
	res, err := display.Sequence("luxury_isolation", "theatrical_drama")
	require.NoError(t, err)

	assert.Equal(t, waveform.Sinusoidal, res.Pattern)
	assert.Equal(t, 3, res.NumCycles)
	assert.Equal(t, 20, res.StepsPerCycle)
	assert.Equal(t, 60, res.TotalSteps)
	assert.Equal(t, 20, res.Period)
	assert.Equal(t, 0.0, res.PhaseOffset)
	require.Len(t, res.Sequence, 60)

	// Sinusoidal sequences open at the blend midpoint.
	assert.Equal(t, 0.5, res.Sequence[0].Phase)
}

func TestSequence_SpanBounds(t *testing.T) {
	res, err := display.Sequence("luxury_isolation", "theatrical_drama",
		display.WithPattern(waveform.Sinusoidal),
		display.WithCycles(3),
		display.WithStepsPerCycle(24),
	)
	require.NoError(t, err)
	require.Equal(t, 72, res.TotalSteps)
	require.Len(t, res.Sequence, 72)

	// compositional_tension spans 0.10 (luxury_isolation) to 0.55
	// (theatrical_drama); interpolation may never escape that interval.
	for _, p := range res.Sequence {
		ct := p.State[coords.CompositionalTension]
		assert.GreaterOrEqual(t, ct, 0.10, "step %d", p.Step)
		assert.LessOrEqual(t, ct, 0.55, "step %d", p.Step)
	}
}

func TestSequence_PhaseOffsetRotation(t *testing.T) {
	base, err := display.Sequence("curated_collection", "immersive_spectacle")
	require.NoError(t, err)

	shifted, err := display.Sequence("curated_collection", "immersive_spectacle",
		display.WithPhaseOffset(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, shifted.PhaseOffset)

	// Half a cycle at 20 steps/cycle rotates the sequence left by 10.
	require.Len(t, shifted.Sequence, 60)
	assert.Equal(t, base.Sequence[10].Phase, shifted.Sequence[0].Phase)
	assert.Equal(t, base.Sequence[10].State, shifted.Sequence[0].State)
	assert.Equal(t, base.Sequence[9].State, shifted.Sequence[59].State, "front elements wrap to the back")

	// Steps are re-enumerated after rotation.
	assert.Equal(t, 0, shifted.Sequence[0].Step)
	assert.Equal(t, 59, shifted.Sequence[59].Step)
}

func TestSequence_Validation(t *testing.T) {
	t.Run("unknown_state_a", func(t *testing.T) {
		_, err := display.Sequence("nope", "theatrical_drama")
		assert.ErrorIs(t, err, display.ErrUnknownState)
	})
	t.Run("unknown_state_b", func(t *testing.T) {
		_, err := display.Sequence("theatrical_drama", "nope")
		assert.ErrorIs(t, err, display.ErrUnknownState)
	})
	t.Run("state_checked_before_pattern", func(t *testing.T) {
		_, err := display.Sequence("nope", "theatrical_drama",
			display.WithPattern(waveform.Pattern("sawtooth")))
		assert.ErrorIs(t, err, display.ErrUnknownState)
	})
	t.Run("bad_pattern", func(t *testing.T) {
		_, err := display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithPattern(waveform.Pattern("sawtooth")))
		assert.ErrorIs(t, err, waveform.ErrInvalidPattern)
	})
	t.Run("bad_cycles", func(t *testing.T) {
		_, err := display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithCycles(0))
		assert.ErrorIs(t, err, waveform.ErrInvalidCycleConfig)
	})
	t.Run("bad_steps", func(t *testing.T) {
		_, err := display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithStepsPerCycle(-5))
		assert.ErrorIs(t, err, waveform.ErrInvalidCycleConfig)
	})
	t.Run("offset_too_high", func(t *testing.T) {
		_, err := display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithPhaseOffset(1.0))
		assert.ErrorIs(t, err, waveform.ErrInvalidPhaseOffset)
	})
	t.Run("offset_negative", func(t *testing.T) {
		_, err := display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithPhaseOffset(-0.25))
		assert.ErrorIs(t, err, waveform.ErrInvalidPhaseOffset)
	})
}

func TestSequence_Deterministic(t *testing.T) {
	first, err := display.Sequence("editorial_minimal", "narrative_journey",
		display.WithPattern(waveform.Triangular),
		display.WithPhaseOffset(0.25),
	)
	require.NoError(t, err)
	second, err := display.Sequence("editorial_minimal", "narrative_journey",
		display.WithPattern(waveform.Triangular),
		display.WithPhaseOffset(0.25),
	)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestApplyPreset_AllRegistered(t *testing.T) {
	wantSteps := map[string]int{
		"seasonal_transition": 72,
		"day_night_cycle":     80,
		"intimacy_sweep":      60,
		"drama_pulse":         80,
		"narrative_shift":     48,
	}
	for _, p := range display.Presets() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			res, err := display.ApplyPreset(p.Name)
			require.NoError(t, err)

			assert.Equal(t, p.Name, res.Preset)
			assert.Equal(t, p.Description, res.Description)
			assert.Equal(t, p.StateA, res.StateA)
			assert.Equal(t, p.StateB, res.StateB)
			assert.Equal(t, p.Pattern, res.Pattern)
			assert.Equal(t, p.StepsPerCycle, res.Period)
			assert.Equal(t, p.NumCycles, res.NumCycles)
			assert.Equal(t, wantSteps[p.Name], res.TotalSteps)
			assert.Len(t, res.Trajectory, wantSteps[p.Name])
		})
	}
}

func TestApplyPreset_TriangularStartsAtStateA(t *testing.T) {
	res, err := display.ApplyPreset("intimacy_sweep")
	require.NoError(t, err)

	wall, err := display.StateByName("abundance_wall")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Trajectory[0].Phase)
	assert.Equal(t, wall.Coords, res.Trajectory[0].State)
}

func TestApplyPreset_SquareNeverBlends(t *testing.T) {
	res, err := display.ApplyPreset("narrative_shift")
	require.NoError(t, err)

	a, err := display.StateByName(res.StateA)
	require.NoError(t, err)
	b, err := display.StateByName(res.StateB)
	require.NoError(t, err)

	for _, p := range res.Trajectory {
		if p.Phase == 0.0 {
			assert.Equal(t, a.Coords, p.State, "step %d", p.Step)
		} else {
			assert.Equal(t, 1.0, p.Phase, "step %d: square phases are exactly 0 or 1", p.Step)
			assert.Equal(t, b.Coords, p.State, "step %d", p.Step)
		}
	}
}

func TestApplyPreset_Unknown(t *testing.T) {
	_, err := display.ApplyPreset("spin_cycle")
	assert.ErrorIs(t, err, display.ErrUnknownPreset)
}

func TestStateDistance_KnownPair(t *testing.T) {
	res, err := display.StateDistance("luxury_isolation", "abundance_wall")
	require.NoError(t, err)

	assert.Equal(t, "luxury_isolation", res.StateA)
	assert.Equal(t, "abundance_wall", res.StateB)
	assert.Equal(t, 1.3838, res.Euclidean)
	assert.Equal(t, coords.Vector{0.85, -0.3, -0.2, -0.65, -0.8}, res.Differences)
}

func TestStateDistance_SymmetryOverAllPairs(t *testing.T) {
	names := display.StateNames()
	for _, a := range names {
		for _, b := range names {
			ab, err := display.StateDistance(a, b)
			require.NoError(t, err)
			ba, err := display.StateDistance(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab.Euclidean, ba.Euclidean, "%s vs %s", a, b)
			for _, ax := range coords.Axes() {
				assert.Equal(t, ab.Differences[ax], -ba.Differences[ax], "%s vs %s axis %v", a, b, ax)
			}
			if a == b {
				assert.Equal(t, 0.0, ab.Euclidean)
				assert.Equal(t, coords.Vector{}, ab.Differences)
			}
		}
	}
}

func TestStateDistance_Unknown(t *testing.T) {
	_, err := display.StateDistance("luxury_isolation", "nope")
	assert.ErrorIs(t, err, display.ErrUnknownState)
}

func TestVectorDistance_AdHoc(t *testing.T) {
	res := display.VectorDistance(coords.NewNeutral(), coords.FromMap(map[string]float64{
		"lighting_drama": 0.9,
	}))
	assert.Empty(t, res.StateA)
	assert.Equal(t, 0.4, res.Euclidean)
	assert.Equal(t, 0.4, res.Differences[coords.LightingDrama])
}

func BenchmarkSequence(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = display.Sequence("luxury_isolation", "theatrical_drama",
			display.WithStepsPerCycle(24))
	}
}
