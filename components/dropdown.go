package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// MenuItem is one entry of a menu list.
var MenuItem = hxui.Define("menu_item",
	hxui.Part(hxui.ComponentPart, hxui.Tag("li")),
	hxui.Modifiers("disabled", "active"),
	hxui.OnSetup(func(s *hxui.Setup) {
		if s.HasModifier("disabled") {
			s.AddCSS(hxui.ComponentPart, "menu-disabled")
		}
		if s.HasModifier("active") {
			s.AddCSS(hxui.ComponentPart, "menu-active")
		}
	}),
)

// Dropdown is a trigger button with a menu that opens on focus. The
// dropdown behavior controller closes it on outside clicks.
//
// Options: label (string). Slots: items (MenuItem).
var Dropdown = hxui.Define("dropdown",
	hxui.Part("trigger", hxui.Tag("div")),
	hxui.Part("menu", hxui.Tag("ul")),
	hxui.Modifiers("top", "bottom", "start", "end", "hover", "open"),
	hxui.SlotMany("items", MenuItem),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddCSS(hxui.ComponentPart, "dropdown")
		for _, m := range s.Options().Modifiers {
			s.AddCSS(hxui.ComponentPart, "dropdown-"+m)
		}
		s.AddBehaviorController(hxui.ComponentPart, "dropdown")

		s.AddCSS("trigger", "btn", "m-1")
		s.AddHTML("trigger", hxui.Attrs{"tabindex": 0, "role": "button"})

		s.AddCSS("menu", "dropdown-content", "menu", "bg-base-100", "rounded-box", "z-1", "w-52", "p-2", "shadow-sm")
		s.AddHTML("menu", hxui.Attrs{"tabindex": 0})
	}),
	hxui.OnRender(func(c *hxui.Component) templ.Component {
		return c.Part(hxui.ComponentPart,
			c.Part("trigger", hxui.Text(text(c.Option("label", "")))),
			c.Part("menu", hxui.Each(c.Slots("items")...)),
		)
	}),
)
