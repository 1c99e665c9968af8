// SPDX-License-Identifier: MIT
//
// Package: vitrine/tool — dispatch registry.
//
// Purpose:
//   Fixed table of wire-named tools over the engine packages. Dispatch
//   is the single entry point: decode, execute, envelope, log.
//
// Contract:
//   - The registry is fully populated in New and never mutated after.
//   - Envelope.ID is caller-supplied or a fresh UUID, never empty.
//   - Fault.Kind comes from the sentinel → kind table below; anything
//     unmapped reports "internal".
//
// AI-Hints:
//   - Add new tools in register(); keep handlers in handlers.go.
//   - Kinds are wire contract: extend the table, never rename entries.

package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitrinelab/vitrine/display"
	"github.com/vitrinelab/vitrine/geometry"
	"github.com/vitrinelab/vitrine/prompt"
	"github.com/vitrinelab/vitrine/taxonomy"
	"github.com/vitrinelab/vitrine/trajectory"
	"github.com/vitrinelab/vitrine/waveform"
)

// Registry is an immutable name → tool table.
type Registry struct {
	tools map[string]Tool
	log   zerolog.Logger
}

// New builds the full registry. The logger receives one event per
// dispatch; pass zerolog.Nop() to silence it.
func New(log zerolog.Logger) *Registry {
	r := &Registry{
		tools: make(map[string]Tool),
		log:   log,
	}
	r.register()
	return r
}

func (r *Registry) add(name, description string, h Handler) {
	r.tools[name] = Tool{Name: name, Description: description, Handler: h}
}

// Names returns the registered wire names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns name/description pairs for every tool, sorted by name.
func (r *Registry) Infos() []Info {
	infos := make([]Info, 0, len(r.tools))
	for _, name := range r.Names() {
		t := r.tools[name]
		infos = append(infos, Info{Name: t.Name, Description: t.Description})
	}
	return infos
}

// Dispatch runs one invocation and always returns a well-formed
// envelope. An empty id is replaced with a fresh UUID so every envelope
// is traceable.
func (r *Registry) Dispatch(id, name string, params json.RawMessage) Envelope {
	if id == "" {
		id = uuid.New().String()
	}
	start := time.Now()

	var (
		result any
		err    error
	)
	if t, ok := r.tools[name]; ok {
		result, err = t.Handler(params)
	} else {
		err = fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	env := Envelope{
		ID:      id,
		Tool:    name,
		OK:      err == nil,
		Elapsed: time.Since(start),
	}

	// One event per dispatch, created in the branch that sends it: an
	// event never terminated by Msg would not return to zerolog's pool.
	var evt *zerolog.Event
	if err != nil {
		kind := kindOf(err)
		env.Error = &Fault{Kind: kind, Message: err.Error()}
		evt = r.log.Warn().Str("kind", kind).Err(err)
	} else {
		env.Result = result
		evt = r.log.Info()
	}
	evt.Str("id", env.ID).
		Str("tool", name).
		Dur("elapsed", env.Elapsed).
		Msg("dispatch")

	return env
}

// kindOf maps engine sentinels to stable wire kinds.
func kindOf(err error) string {
	switch {
	case errors.Is(err, ErrUnknownTool):
		return "unknown_tool"
	case errors.Is(err, ErrBadParams):
		return "bad_params"
	case errors.Is(err, display.ErrUnknownState):
		return "unknown_state"
	case errors.Is(err, display.ErrUnknownPreset):
		return "unknown_preset"
	case errors.Is(err, waveform.ErrInvalidPattern):
		return "invalid_pattern"
	case errors.Is(err, waveform.ErrInvalidCycleConfig):
		return "invalid_cycle_config"
	case errors.Is(err, waveform.ErrInvalidPhaseOffset):
		return "invalid_phase_offset"
	case errors.Is(err, trajectory.ErrKeyframeCount):
		return "invalid_keyframe_count"
	case errors.Is(err, trajectory.ErrEmptyTrajectory):
		return "empty_trajectory"
	case errors.Is(err, taxonomy.ErrUnknownComposition):
		return "unknown_composition"
	case errors.Is(err, taxonomy.ErrUnknownDepthStaging):
		return "unknown_depth_staging"
	case errors.Is(err, taxonomy.ErrUnknownLighting):
		return "unknown_lighting"
	case errors.Is(err, taxonomy.ErrUnknownSightLine):
		return "unknown_sight_line"
	case errors.Is(err, geometry.ErrWindowSize):
		return "invalid_window_size"
	case errors.Is(err, prompt.ErrNoSource):
		return "no_prompt_source"
	default:
		return "internal"
	}
}

// decode unmarshals raw parameters, treating absent params as {}.
func decode(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	return nil
}
