package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newStatesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the canonical display states",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.invoke("list_display_states", nil)
		},
	}
}

func newPresetsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the curated rhythmic presets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.invoke("list_display_rhythmic_presets", nil)
		},
	}
}

func newSequenceCmd(o *rootOptions) *cobra.Command {
	var (
		from, to, pattern string
		cycles, steps     int
		phase             float64
	)
	c := &cobra.Command{
		Use:   "sequence",
		Short: "Generate an oscillating trajectory between two states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := map[string]any{
				"state_a_id": from,
				"state_b_id": to,
			}
			if cmd.Flags().Changed("pattern") {
				params["oscillation_pattern"] = pattern
			}
			if cmd.Flags().Changed("cycles") {
				params["num_cycles"] = cycles
			}
			if cmd.Flags().Changed("steps") {
				params["steps_per_cycle"] = steps
			}
			if cmd.Flags().Changed("phase") {
				params["phase_offset"] = phase
			}
			return o.invoke("generate_display_rhythmic_sequence", params)
		},
	}
	c.Flags().StringVar(&from, "from", "", "Starting canonical state id")
	c.Flags().StringVar(&to, "to", "", "Ending canonical state id")
	c.Flags().StringVar(&pattern, "pattern", "", "Oscillation pattern: sinusoidal|triangular|square")
	c.Flags().IntVar(&cycles, "cycles", 3, "Number of full oscillation cycles")
	c.Flags().IntVar(&steps, "steps", 20, "Interpolation steps per cycle")
	c.Flags().Float64Var(&phase, "phase", 0, "Phase offset in cycle fractions [0,1)")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func newPresetApplyCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preset-apply <preset>",
		Short: "Expand one curated preset into its full trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.invoke("apply_display_rhythmic_preset", map[string]any{
				"preset_name": args[0],
			})
		},
	}
}

func newVocabCmd(o *rootOptions) *cobra.Command {
	var strength float64
	c := &cobra.Command{
		Use:   "vocab",
		Short: "Extract the visual vocabulary for a coordinate vector",
		Long: `Reads a five-axis coordinate vector from --state-file and reports the
nearest visual archetype with its strength-gated keyword set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.stateFile == "" {
				return errors.New("vocab: --state-file is required")
			}
			state, err := loadStateMap(o.stateFile)
			if err != nil {
				return err
			}
			params := map[string]any{"state": state}
			if cmd.Flags().Changed("strength") {
				params["strength"] = strength
			}
			return o.invoke("extract_display_visual_vocabulary", params)
		},
	}
	c.Flags().Float64Var(&strength, "strength", 1.0, "Keyword band strength in [0,1]")
	return c
}

func newDistanceCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <state-a> <state-b>",
		Short: "Compute the Euclidean distance between two canonical states",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.invoke("compute_display_state_distance", map[string]any{
				"state_a_id": args[0],
				"state_b_id": args[1],
			})
		},
	}
}

func newBlueprintCmd(o *rootOptions) *cobra.Command {
	var (
		width, height                        float64
		composition, depth, lighting, viewer string
	)
	c := &cobra.Command{
		Use:   "blueprint",
		Short: "Map a window configuration to its geometric blueprint",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.invoke("map_display_parameters", map[string]any{
				"window_width_ft":    width,
				"window_height_ft":   height,
				"composition_type":   composition,
				"depth_staging":      depth,
				"lighting_framework": lighting,
				"viewer_context":     viewer,
			})
		},
	}
	addStagingFlags(c, &width, &height, &composition, &depth, &lighting, &viewer)
	return c
}

// addStagingFlags wires the window/taxonomy flag set shared by blueprint
// and prompt display. Defaults name real registry entries so a bare
// --width/--height invocation resolves.
func addStagingFlags(c *cobra.Command, width, height *float64, composition, depth, lighting, viewer *string) {
	c.Flags().Float64Var(width, "width", 0, "Window width in feet")
	c.Flags().Float64Var(height, "height", 0, "Window height in feet")
	c.Flags().StringVar(composition, "composition", "pyramidal",
		"Composition family: pyramidal|step_progression|radial|isolation|repetition|triangular_cluster")
	c.Flags().StringVar(depth, "depth", "theatrical_depth",
		"Depth staging: compressed_2d|theatrical_depth|forced_perspective|shallow_focus")
	c.Flags().StringVar(lighting, "lighting", "accent_dramatic",
		"Lighting framework: accent_dramatic|soft_luxury|theatrical_uplight|cool_modern|ambient_even")
	c.Flags().StringVar(viewer, "viewer", "street_pedestrian",
		"Viewer context: street_pedestrian|passing_vehicle|close_inspection|elevated_view")
	_ = c.MarkFlagRequired("width")
	_ = c.MarkFlagRequired("height")
}

func newToolsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the wire tools the serve loop accepts",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.emit(o.registry.Infos())
		},
	}
}

func newInfoCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show engine build and registry inventory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.invoke("get_server_info", nil)
		},
	}
}
