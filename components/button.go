package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// Button renders a button, or a link styled as one when an href option is
// given.
//
// Options: label (string, used when no content is passed), href (string),
// type (string, default "button").
var Button = hxui.Define("button",
	hxui.Part(hxui.ComponentPart, hxui.Tag("button")),
	hxui.Variants("primary", "secondary", "accent", "ghost", "link"),
	hxui.Modifiers("outline", "wide", "block", "circle", "disabled"),
	hxui.Sizes("xs", "sm", "md", "lg", "xl"),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddCSS(hxui.ComponentPart, "btn")
		for _, v := range s.Options().Variants {
			s.AddCSS(hxui.ComponentPart, "btn-"+v)
		}
		for _, m := range s.Options().Modifiers {
			s.AddCSS(hxui.ComponentPart, "btn-"+m)
		}
		if size := s.Size(); size != "" {
			s.AddCSS(hxui.ComponentPart, "btn-"+size)
		}

		if href := text(s.Option("href", nil)); href != "" {
			s.SetTagName(hxui.ComponentPart, "a")
			s.AddHTML(hxui.ComponentPart, hxui.Attrs{"href": href})
		} else {
			s.AddHTML(hxui.ComponentPart, hxui.Attrs{"type": s.Option("type", "button")})
		}
		if s.HasModifier("disabled") {
			s.AddHTML(hxui.ComponentPart, hxui.Attrs{"aria": hxui.Attrs{"disabled": "true"}})
		}
	}),
	hxui.OnRender(func(c *hxui.Component) templ.Component {
		content := c.Content()
		if content == nil {
			content = hxui.Text(text(c.Option("label", "")))
		}
		return c.Part(hxui.ComponentPart, content)
	}),
)
