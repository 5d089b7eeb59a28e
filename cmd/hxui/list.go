package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pthm/hxui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List component types and their schemas",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, t := range allTypes() {
			writeSchema(cmd.OutOrStdout(), t)
		}
		return nil
	},
}

func writeSchema(w io.Writer, t *hxui.Type) {
	header := styleTitle.Render(t.Name())
	if p := t.Parent(); p != nil {
		header += styleLabel.Render(" extends " + p.Name())
	}
	fmt.Fprintln(w, header)

	s := t.Schema()
	parts := make([]string, 0, len(s.Parts()))
	for _, p := range s.Parts() {
		parts = append(parts, p.Name+"<"+p.TagName+">")
	}
	writeField(w, "parts", parts)
	writeField(w, "variants", s.Variants())
	writeField(w, "modifiers", s.Modifiers())
	writeField(w, "sizes", s.Sizes())

	slots := make([]string, 0, len(s.Slots()))
	for _, slot := range s.Slots() {
		name := slot.Name
		if slot.Many {
			name += "[]"
		}
		if slot.Renderer != nil {
			name += "(" + slot.Renderer.Name() + ")"
		}
		slots = append(slots, name)
	}
	writeField(w, "slots", slots)
	fmt.Fprintln(w)
}

func writeField(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-9s", label)), strings.Join(values, ", "))
}
