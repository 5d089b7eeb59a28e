// Package hxui provides a component system for server-rendered markup
// built on templ and HTMX.
//
// A component type declares its structure once: named parts, the variants,
// modifiers and sizes callers may choose from, and slots for nested content.
// Each render merges three layers of configuration per part (the type's
// schema defaults, defaults contributed by setup code, and the caller's
// options) into a final tag name, class string, behavior controller list
// and attribute map.
//
// # Core Concepts
//
// Types are defined with Define and derived with Extend:
//
//	var Card = hxui.Define("card",
//	    hxui.Part("title", hxui.Tag("h2")),
//	    hxui.Parts("body", "actions"),
//	    hxui.Variants("bordered", "dash"),
//	    hxui.OnSetup(func(s *hxui.Setup) {
//	        s.AddCSS("component", "card")
//	        s.AddCSS("title", "card-title")
//	    }),
//	    hxui.OnRender(renderCard),
//	)
//
//	var CompactCard = Card.Extend("compact_card",
//	    hxui.Part("title", hxui.Tag("h3")),
//	)
//
// Every type has a "component" part for its root element. A subtype
// inherits its parent's schema, runs the parent's setup first and keeps the
// parent's render function unless it declares its own. Redefining a part in
// a subtype never changes the parent.
//
// # Lifecycle
//
// Type.New (and Build, which Renderer requires) runs the whole
// configuration phase before returning:
//
//  1. Caller options are merged into per-part bundles and the chosen
//     variants and modifiers are validated.
//  2. The setup chain runs. Only setup may change part defaults, through
//     SetTagName, AddCSS, AddHTML and AddBehaviorController.
//  3. Slot contents are built with their renderers.
//  4. The configuration is sealed.
//
// After sealing, the mutation hooks fail with ErrSealed and the render
// function only reads resolved values through Component.Part and the
// Rendered* accessors.
//
// # Precedence
//
// For each part, caller values beat setup defaults, which beat schema
// defaults. Classes are concatenated in the order defaults, caller;
// attribute maps are deep-merged in the order generated class/controller
// seed, setup defaults, caller attributes. Empty class and controller lists
// are omitted from the output.
//
// # Options
//
// Options are either built directly or parsed from the flat key form used
// by templates, YAML fixtures and the CLI:
//
//	opts, err := Card.ParseOptions(map[string]any{
//	    "css":       "shadow-lg",
//	    "title_css": "text-xl",
//	    "variant":   "bordered",
//	    "title":     "Hello",
//	})
//
// # Previews
//
// A Registry serves any registered type over HTTP, with its options carried
// in a signed (or, with Sensitive, encrypted) token:
//
//	reg := hxui.NewRegistry(key)
//	components.Register(reg)
//	http.Handle("/_ui/", http.StripPrefix("/_ui", reg.Handler()))
//
// Lazy and Defer return placeholders that load a preview with hx-get.
package hxui
