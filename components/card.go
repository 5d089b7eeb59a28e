package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/hxui"
)

// Card is a bordered content box with an optional figure, title and
// actions row.
//
// Options: title (string). Slots: figure, actions.
var Card = hxui.Define("card",
	hxui.Part("title", hxui.Tag("h2")),
	hxui.Parts("body", "actions"),
	hxui.Variants("bordered", "dash"),
	hxui.Modifiers("side", "image-full"),
	hxui.Sizes("xs", "sm", "md", "lg", "xl"),
	hxui.Slot("figure"),
	hxui.SlotMany("actions"),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddCSS(hxui.ComponentPart, "card")
		for _, v := range []string{"bordered", "dash"} {
			if s.HasVariant(v) {
				s.AddCSS(hxui.ComponentPart, "card-"+v)
			}
		}
		for _, m := range []string{"side", "image-full"} {
			if s.HasModifier(m) {
				s.AddCSS(hxui.ComponentPart, "card-"+m)
			}
		}
		if size := s.Size(); size != "" {
			s.AddCSS(hxui.ComponentPart, "card-"+size)
		}
		s.AddCSS("title", "card-title")
		s.AddCSS("body", "card-body")
		s.AddCSS("actions", "card-actions", "justify-end")
	}),
	hxui.OnRender(renderCard),
)

// CompactCard is a small card with an h3 title.
var CompactCard = Card.Extend("compact_card",
	hxui.Part("title", hxui.Tag("h3")),
	hxui.OnSetup(func(s *hxui.Setup) {
		s.AddCSS(hxui.ComponentPart, "card-sm")
	}),
)

func renderCard(c *hxui.Component) templ.Component {
	var title templ.Component
	if t := text(c.Option("title", "")); t != "" {
		title = c.Part("title", hxui.Text(t))
	}
	var actions templ.Component
	if c.HasSlot("actions") {
		actions = c.Part("actions", hxui.Each(c.Slots("actions")...))
	}
	return c.Part(hxui.ComponentPart,
		c.Slot("figure"),
		c.Part("body", title, c.Content(), actions),
	)
}
