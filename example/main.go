package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Create registry with signing key (in production, use a real secret)
	reg := hxui.NewRegistry([]byte("example-key-must-be-32-bytes!!"))
	reg.Logger = logger
	components.Register(reg)

	mux := http.NewServeMux()

	// Preview routes, used by the lazy-loaded cards below
	mux.Handle("/_ui/", http.StripPrefix("/_ui", reg.Handler()))

	// Page routes
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := hxui.Render(w, r, layout(dashboard(reg))); err != nil {
			logger.Error().Err(err).Msg("render failed")
		}
	})

	addr := ":8080"
	logger.Info().Str("addr", "http://localhost"+addr).Msg("starting server")
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// dashboard renders a card eagerly and defers the rest through the preview
// endpoint.
func dashboard(reg *hxui.Registry) templ.Component {
	actions := hxui.Options{}.
		WithSlot("actions", hxui.Options{Variants: []string{"primary"}}, hxui.Text("Deploy")).
		WithSlot("actions", hxui.Options{Variants: []string{"ghost"}}, hxui.Text("Cancel"))
	actions.Values = map[string]any{"title": "Release 1.4"}
	actions.CSS = []string{"bg-base-100", "w-96", "shadow-sm"}

	menu := hxui.Options{Values: map[string]any{"label": "Environment"}}.
		WithSlot("items", hxui.Options{Modifiers: []string{"active"}}, hxui.Text("Staging")).
		WithSlot("items", hxui.Options{}, hxui.Text("Production"))

	return hxui.Each(
		components.Card.Render(actions, hxui.Text("Ships the new billing pages.")),
		components.Dropdown.Render(menu, nil),
		reg.Defer("/_ui", "countdown", hxui.Options{
			Modifiers: []string{"labels"},
			Values:    map[string]any{"duration": 3 * 3600},
		}, hxui.Text("…")),
		reg.Lazy("/_ui", "compact_card", hxui.Options{
			Values: map[string]any{"title": "Below the fold"},
		}, hxui.Text("Loading…")),
	)
}

func layout(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html data-theme="light"><head><meta charset="utf-8">`+
			`<title>hxui example</title>`+
			`<link href="https://cdn.jsdelivr.net/npm/daisyui@5" rel="stylesheet">`+
			`<script src="https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"></script>`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`+
			`</head><body class="p-8 flex flex-col gap-6">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}
