package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/stylesheet"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [type...]",
	Short: "Check that rendered classes exist in your stylesheets",
	Long: `Render each component type and report classes that no stylesheet
defines. Without arguments every type is checked with default options.`,
	Example: `  hxui lint --stylesheet 'web/static/**/*.css'
  hxui lint button --set variant=primary --stylesheet dist/app.css`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		sheet, err := loadStylesheets(cfg.Lint.Stylesheets)
		if err != nil {
			return err
		}

		types := allTypes()
		if len(args) > 0 {
			types = nil
			for _, name := range args {
				t, err := lookupType(name)
				if err != nil {
					return err
				}
				types = append(types, t)
			}
		}

		var missing int
		for _, t := range types {
			opts := hxui.Options{}
			if len(args) > 0 {
				if opts, err = optionsFromFlags(cmd, t); err != nil {
					return err
				}
			}
			n, err := lintType(cmd.OutOrStdout(), sheet, t, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", t.Name(), err)
			}
			missing += n
		}

		if missing > 0 {
			return fmt.Errorf("%d classes missing from stylesheets", missing)
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringSlice("stylesheet", nil, "Stylesheet glob patterns (supports **)")
	addOptionFlags(lintCmd)
}

// loadStylesheets expands patterns and parses every matching file.
func loadStylesheets(patterns []string) (*stylesheet.Sheet, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no stylesheets configured (use --stylesheet or lint.stylesheets)")
	}

	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no stylesheets match %v", patterns)
	}
	return stylesheet.Load(paths...)
}

// lintType renders t and reports classes the sheet does not define. It
// returns the number of missing classes.
func lintType(w io.Writer, sheet *stylesheet.Sheet, t *hxui.Type, opts hxui.Options) (int, error) {
	comp, err := t.Build(opts, nil)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := comp.Render(context.Background(), &buf); err != nil {
		return 0, err
	}
	classes, err := stylesheet.ClassesInHTML(&buf)
	if err != nil {
		return 0, err
	}

	missing := sheet.Missing(classes)
	if len(missing) == 0 {
		fmt.Fprintf(w, "%s %s\n", styleOK.Render("✓"), t.Name())
		return 0, nil
	}

	fmt.Fprintf(w, "%s %s\n", styleWarning.Render("⚠"), t.Name())
	for _, class := range missing {
		fmt.Fprintf(w, "    %s %s\n", styleLabel.Render("missing"), class)
	}
	return len(missing), nil
}
