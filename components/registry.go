// Package components holds the stock component types built on hxui.
package components

import "github.com/pthm/hxui"

// All lists every stock component type.
func All() []*hxui.Type {
	return []*hxui.Type{
		Button,
		Card,
		CompactCard,
		Countdown,
		Dropdown,
		Figure,
		MenuItem,
		Modal,
	}
}

// Register adds every stock component type to reg.
// Call this once at application startup before handling requests.
func Register(reg *hxui.Registry) {
	for _, t := range All() {
		reg.Add(t)
	}
}

// text reads a string option, returning "" for missing or non-string
// values.
func text(opt any) string {
	s, _ := opt.(string)
	return s
}
