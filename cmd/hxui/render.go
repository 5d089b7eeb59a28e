package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <type>",
	Short: "Render a component to stdout",
	Long: `Render one component with options from a YAML file and --set pairs.
Options use the flat form: css, html, tag_name, controllers, <part>_css,
variant(s), modifier(s), size and any component-specific keys.`,
	Example: `  hxui render button --set variant=primary --set label=Save
  hxui render card -f card.yaml --text "Card body"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupType(args[0])
		if err != nil {
			return err
		}
		opts, err := optionsFromFlags(cmd, t)
		if err != nil {
			return err
		}
		comp, err := t.Build(opts, contentFromFlags(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := comp.Render(cmd.Context(), out); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	},
}

func init() {
	addOptionFlags(renderCmd)
}
