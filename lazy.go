package hxui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoadAttrs builds the HTMX attributes that replace an element with the
// response of a GET to url once trigger fires.
//
//	hxui.LoadAttrs(previewURL, "intersect once")
//	// hx-get="..." hx-swap="outerHTML" hx-trigger="intersect once"
func LoadAttrs(url, trigger string) templ.Attributes {
	attrs := templ.Attributes{
		"hx-get":  url,
		"hx-swap": "outerHTML",
	}
	if trigger != "" {
		attrs["hx-trigger"] = trigger
	}
	return attrs
}

// loader wraps placeholder in a div carrying attrs.
func loader(attrs templ.Attributes, placeholder templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<div"+RenderAttrs(Attrs(attrs))+">"); err != nil {
			return err
		}
		if placeholder != nil {
			if err := placeholder.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}

// ErrorComponent renders err as an inline, escaped error box.
func ErrorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, werr := io.WriteString(w, `<div class="hxui-error">Render error: `+templ.EscapeString(err.Error())+`</div>`)
		return werr
	})
}
