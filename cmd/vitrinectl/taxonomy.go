package main

import "github.com/spf13/cobra"

func newTaxonomyCmd(o *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect the composition, lighting, and sight-line tables",
	}
	c.AddCommand(
		newCompositionsCmd(o),
		newLightingCmd(o),
		newSightLinesCmd(o),
	)
	return c
}

func newCompositionsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compositions [family]",
		Short: "List composition families, or show one full specification",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				return o.invoke("get_composition_specifications", map[string]any{
					"composition_type": args[0],
				})
			}
			return o.invoke("list_composition_types", nil)
		},
	}
}

func newLightingCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lighting",
		Short: "List the lighting frameworks",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return o.invoke("list_lighting_frameworks", nil)
		},
	}
}

func newSightLinesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sightlines <context>",
		Short: "Show sight-line geometry for one viewer context",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return o.invoke("get_sight_line_geometry", map[string]any{
				"viewer_context": args[0],
			})
		},
	}
}
