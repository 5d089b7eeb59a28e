package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// allTypes lists every type the CLI knows about.
func allTypes() []*hxui.Type {
	return append([]*hxui.Type{hxui.Passthrough}, components.All()...)
}

func lookupType(name string) (*hxui.Type, error) {
	for _, t := range allTypes() {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w %q", hxui.ErrUnknownType, name)
}

// addOptionFlags registers the flags shared by commands that build a
// component from the command line.
func addOptionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("file", "f", "", "YAML file with component options")
	f.StringArray("set", nil, "Set an option (key=value, value parsed as YAML); repeatable")
	f.String("text", "", "Inner text content")
}

// optionsFromFlags reads the options file and --set pairs into flat
// options and parses them against the type's schema. --set wins over the
// file.
func optionsFromFlags(cmd *cobra.Command, t *hxui.Type) (hxui.Options, error) {
	path, _ := cmd.Flags().GetString("file")
	sets, _ := cmd.Flags().GetStringArray("set")

	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return hxui.Options{}, fmt.Errorf("reading options file: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return hxui.Options{}, fmt.Errorf("parsing options file %s: %w", path, err)
		}
	}
	for _, set := range sets {
		key, value, err := parseSet(set)
		if err != nil {
			return hxui.Options{}, err
		}
		raw[key] = value
	}

	return t.ParseOptions(raw)
}

// parseSet splits key=value and decodes value as a YAML scalar or list, so
// --set size=lg, --set duration=90 and --set 'css=[a, b]' all work.
func parseSet(s string) (string, any, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid --set %q, expected key=value", s)
	}
	var decoded any
	if err := yaml.Unmarshal([]byte(value), &decoded); err != nil || decoded == nil {
		return key, value, nil
	}
	return key, decoded, nil
}

func contentFromFlags(cmd *cobra.Command) templ.Component {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return hxui.Text(text)
	}
	return nil
}
