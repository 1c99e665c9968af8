package main

import "github.com/spf13/cobra"

func newPromptCmd(o *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "prompt",
		Short: "Render image-generation prompts",
	}
	c.AddCommand(
		newPromptDisplayCmd(o),
		newPromptCompositeCmd(o),
		newPromptSequenceCmd(o),
	)
	return c
}

// styleOr resolves the effective style modifier: an explicit --style
// wins, otherwise the config file's default applies.
func (o *rootOptions) styleOr(cmd *cobra.Command, style string) string {
	if !cmd.Flags().Changed("style") && o.cfg.Style != "" {
		return o.cfg.Style
	}
	return style
}

func newPromptDisplayCmd(o *rootOptions) *cobra.Command {
	var (
		width, height                        float64
		composition, depth, lighting, viewer string
		subject, style                       string
	)
	c := &cobra.Command{
		Use:   "display",
		Short: "Render the full geometric prompt for a window scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.invoke("generate_display_prompt", map[string]any{
				"window_width_ft":     width,
				"window_height_ft":    height,
				"composition_type":    composition,
				"depth_staging":       depth,
				"lighting_framework":  lighting,
				"viewer_context":      viewer,
				"subject_description": subject,
				"style_modifier":      o.styleOr(cmd, style),
			})
		},
	}
	addStagingFlags(c, &width, &height, &composition, &depth, &lighting, &viewer)
	c.Flags().StringVar(&subject, "subject", "", "Subject description for the scene")
	c.Flags().StringVar(&style, "style", "", "Style modifier appended to the prompt")
	return c
}

func newPromptCompositeCmd(o *rootOptions) *cobra.Command {
	var preset, style string
	c := &cobra.Command{
		Use:   "composite",
		Short: "Render a keyword prompt from a preset midpoint or custom vector",
		Long: `Renders a visual-vocabulary prompt. Source is either --preset (the
midpoint of a curated preset's state pair) or a custom coordinate
vector from --state-file; exactly one is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := map[string]any{"mode": "composite"}
			if preset != "" {
				params["preset_name"] = preset
			}
			if o.stateFile != "" {
				state, err := loadStateMap(o.stateFile)
				if err != nil {
					return err
				}
				params["custom_state"] = state
			}
			if s := o.styleOr(cmd, style); s != "" {
				params["style_modifier"] = s
			}
			return o.invoke("generate_display_attractor_prompt", params)
		},
	}
	c.Flags().StringVar(&preset, "preset", "", "Curated preset whose midpoint seeds the prompt")
	c.Flags().StringVar(&style, "style", "", "Style modifier appended to the prompt")
	return c
}

func newPromptSequenceCmd(o *rootOptions) *cobra.Command {
	var (
		keyframes int
		style     string
	)
	c := &cobra.Command{
		Use:   "sequence <preset>",
		Short: "Render keyframe prompts along a preset trajectory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{"preset_name": args[0]}
			if cmd.Flags().Changed("keyframes") {
				params["keyframe_count"] = keyframes
			}
			if s := o.styleOr(cmd, style); s != "" {
				params["style_modifier"] = s
			}
			return o.invoke("generate_display_sequence_prompts", params)
		},
	}
	c.Flags().IntVar(&keyframes, "keyframes", 4, "Number of keyframes to extract")
	c.Flags().StringVar(&style, "style", "", "Style modifier appended to each prompt")
	return c
}
