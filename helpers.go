package hxui

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    card, err := components.Card.Build(opts, body)
//	    if err != nil { ... }
//	    hxui.Render(w, r, card)
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
//
// The preview handler uses it to skip the page wrapper for HTMX swaps.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
