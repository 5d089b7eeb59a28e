package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// Figure is an image with an optional caption.
//
// Options: src, alt, caption (strings).
var Figure = hxui.Define("figure",
	hxui.Part(hxui.ComponentPart, hxui.Tag("figure")),
	hxui.Part("image", hxui.Tag("img")),
	hxui.Part("caption", hxui.Tag("figcaption")),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddHTML("image", hxui.Attrs{
			"src": s.Option("src", ""),
			"alt": s.Option("alt", ""),
		})
		s.AddCSS("caption", "text-sm", "opacity-70")
	}),
	hxui.OnRender(func(c *hxui.Component) templ.Component {
		var caption templ.Component
		if t := text(c.Option("caption", "")); t != "" {
			caption = c.Part("caption", hxui.Text(t))
		}
		return c.Part(hxui.ComponentPart, c.Part("image"), caption)
	}),
)
