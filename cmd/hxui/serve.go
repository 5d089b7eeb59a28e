package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/pthm/hxui"
	"github.com/pthm/hxui/components"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve component previews over HTTP",
	Long: `Start an HTTP server with the preview endpoint mounted at the prefix.
The prefix itself lists every type with a link to its default preview.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "127.0.0.1:7331", "Listen address")
	f.String("prefix", "/_ui", "URL prefix of the preview endpoint")
	f.String("key", "", "Preview token signing key (min 16 bytes)")
	f.Bool("sensitive", false, "Encrypt preview tokens instead of signing them")
}

// newPreviewRegistry registers the stock types on a registry configured
// from cfg.
func newPreviewRegistry(cfg Config, logger zerolog.Logger) *hxui.Registry {
	reg := hxui.NewRegistry([]byte(cfg.Key))
	if cfg.Serve.Sensitive {
		reg.Sensitive()
	}
	reg.Logger = logger
	reg.Page = previewPage
	components.Register(reg)
	return reg
}

// newMux mounts the registry under prefix with request logging.
func newMux(reg *hxui.Registry, prefix string, logger zerolog.Logger) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")

	mux := http.NewServeMux()
	mux.Handle(prefix+"/", http.StripPrefix(prefix, reg.Handler()))
	if prefix != "" {
		mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
			if err := hxui.Render(w, r, previewPage("hxui", previewIndex(reg, prefix))); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("index render failed")
			}
		})
	}

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	return hlog.NewHandler(logger)(h)
}

func serve(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	reg := newPreviewRegistry(cfg, logger)
	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           newMux(reg, cfg.Serve.Prefix, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Serve.Addr).Str("prefix", cfg.Serve.Prefix).Msg("serving previews")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// previewPage wraps a preview in a minimal document that loads HTMX.
func previewPage(name string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html><head><meta charset="utf-8"><title>` +
			templ.EscapeString(name) +
			`</title><script src="https://unpkg.com/htmx.org@2.0.4"></script></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// previewIndex links every registered type to its default preview.
func previewIndex(reg *hxui.Registry, prefix string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<ul>"); err != nil {
			return err
		}
		for _, name := range reg.Names() {
			u, err := reg.PreviewURL(prefix, name, hxui.Options{})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`, templ.EscapeString(u), templ.EscapeString(name))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
