package display

// ApplyPreset runs a curated rhythmic preset end to end and returns its
// metadata together with the full interpolated trajectory.
//
// Errors: ErrUnknownPreset when the identifier is not registered. A
// registered preset always references valid states and configuration,
// so no further failure modes exist.
func ApplyPreset(name string) (*PresetResult, error) {
	p, err := PresetByName(name)
	if err != nil {
		return nil, err
	}

	seq, err := Sequence(p.StateA, p.StateB,
		WithPattern(p.Pattern),
		WithCycles(p.NumCycles),
		WithStepsPerCycle(p.StepsPerCycle),
	)
	if err != nil {
		// Registry entries are validated by construction; reaching this
		// means the registry itself is inconsistent.
		return nil, err
	}

	return &PresetResult{
		Preset:      p.Name,
		Description: p.Description,
		StateA:      p.StateA,
		StateB:      p.StateB,
		Pattern:     p.Pattern,
		Period:      p.StepsPerCycle,
		NumCycles:   p.NumCycles,
		TotalSteps:  seq.TotalSteps,
		Trajectory:  seq.Sequence,
	}, nil
}
