package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// Modal is a native dialog with a title, a content box, an actions row of
// buttons and a backdrop that closes it.
//
// Options: id, title (strings). Slots: actions (Button).
var Modal = hxui.Define("modal",
	hxui.Part(hxui.ComponentPart, hxui.Tag("dialog")),
	hxui.Part("box"),
	hxui.Part("title", hxui.Tag("h3")),
	hxui.Part("actions"),
	hxui.Part("backdrop", hxui.Tag("form")),
	hxui.Modifiers("top", "middle", "bottom", "start", "end"),
	hxui.SlotMany("actions", Button),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddCSS(hxui.ComponentPart, "modal")
		for _, m := range s.Options().Modifiers {
			s.AddCSS(hxui.ComponentPart, "modal-"+m)
		}
		if id := text(s.Option("id", nil)); id != "" {
			s.AddHTML(hxui.ComponentPart, hxui.Attrs{"id": id})
		}
		s.AddBehaviorController(hxui.ComponentPart, "modal")

		s.AddCSS("box", "modal-box")
		s.AddCSS("title", "text-lg", "font-bold")
		s.AddCSS("actions", "modal-action")
		s.AddCSS("backdrop", "modal-backdrop")
		s.AddHTML("backdrop", hxui.Attrs{"method": "dialog"})
	}),
	hxui.OnRender(func(c *hxui.Component) templ.Component {
		var title templ.Component
		if t := text(c.Option("title", "")); t != "" {
			title = c.Part("title", hxui.Text(t))
		}
		var actions templ.Component
		if c.HasSlot("actions") {
			actions = c.Part("actions", hxui.Each(c.Slots("actions")...))
		}
		return c.Part(hxui.ComponentPart,
			c.Part("box", title, c.Content(), actions),
			c.Part("backdrop", closeButton),
		)
	}),
)

var closeButton = Button.Render(hxui.Options{
	PartOptions: hxui.PartOptions{CSS: []string{"sr-only"}},
	Values:      map[string]any{"label": "close", "type": "submit"},
}, nil)
