package hxui

import "github.com/a-h/templ"

// Renderer builds a fully resolved component from options and inner
// content. *Type implements it; slots and the preview Registry accept any
// Renderer.
//
// Build runs the whole configuration phase (option merge, validation,
// setup) before returning, so the returned templ.Component only emits
// markup. Configuration errors are returned here, never from Render.
type Renderer interface {
	Name() string
	Build(opts Options, content templ.Component) (templ.Component, error)
}

// SetupFunc is the setup phase of a component type. It runs once per
// instance, after the caller options are merged and validated, and is the
// only place part defaults may be changed.
//
//	hxui.OnSetup(func(s *hxui.Setup) {
//	    s.AddCSS("component", "card")
//	    if s.HasVariant("bordered") {
//	        s.AddCSS("component", "card-bordered")
//	    }
//	})
type SetupFunc func(s *Setup)

// RenderFunc produces the markup of a resolved component. Types without a
// RenderFunc render their component part around the inner content.
type RenderFunc func(c *Component) templ.Component
