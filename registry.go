package hxui

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// Registry maps component type names to renderers and serves previews of
// them over HTTP.
//
// A preview request names a type and carries its options as a signed token
// produced by PreviewURL, so any component can be rendered in isolation or
// lazy-loaded into a page:
//
//	reg := hxui.NewRegistry(key)
//	reg.Add(components.Card, components.Button)
//	http.Handle("/_ui/", http.StripPrefix("/_ui", reg.Handler()))
//
// Passthrough is always registered.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	encoder   *Encoder
	sensitive bool

	// Logger receives preview failures. Defaults to a no-op logger.
	Logger zerolog.Logger

	// OnError is called when a preview cannot be rendered.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)

	// Page wraps previews requested outside HTMX, e.g. to add a stylesheet.
	// Nil serves the bare fragment.
	Page func(name string, body templ.Component) templ.Component
}

// NewRegistry creates a registry whose preview tokens are signed with key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxui: failed to create encoder: %v", err))
	}

	reg := &Registry{
		renderers: make(map[string]Renderer),
		encoder:   enc,
		Logger:    zerolog.Nop(),
	}
	reg.renderers[Passthrough.Name()] = Passthrough

	// Default error handler
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, http.StatusText(StatusFor(err)), StatusFor(err))
	}

	return reg
}

// StatusFor maps a preview error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownType):
		return http.StatusNotFound
	case IsDecryptionError(err), errors.Is(err, ErrInvalidFormat):
		return http.StatusBadRequest
	case IsUnknownPart(err), IsInvalidOption(err),
		errors.Is(err, ErrUnknownSlot), errors.Is(err, ErrSlotCardinality):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Sensitive switches preview tokens from signed to encrypted.
func (reg *Registry) Sensitive() *Registry {
	reg.sensitive = true
	return reg
}

// Encoder returns the registry's token encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers renderers by name.
// Panics on a duplicate name, so collisions surface at startup rather than
// during requests.
func (reg *Registry) Add(renderers ...Renderer) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, r := range renderers {
		name := r.Name()
		if _, exists := reg.renderers[name]; exists {
			panic(fmt.Sprintf("hxui: duplicate component type %q", name))
		}
		reg.renderers[name] = r
	}
}

// Lookup returns the renderer registered under name.
func (reg *Registry) Lookup(name string) (Renderer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.renderers[name]
	return r, ok
}

// Names returns the registered type names, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.renderers))
	for name := range reg.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build renders the named type with opts.
func (reg *Registry) Build(name string, opts Options, content templ.Component) (templ.Component, error) {
	r, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	return r.Build(opts, content)
}

// PreviewURL returns the URL under prefix that renders the named type with
// opts. The handler must be mounted at prefix.
func (reg *Registry) PreviewURL(prefix, name string, opts Options) (string, error) {
	if _, ok := reg.Lookup(name); !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownType, name)
	}
	token, err := EncodeOptions(reg.encoder, opts, reg.sensitive)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name + "?p=" + url.QueryEscape(token), nil
}

// Handler returns the HTTP handler serving previews at /<type>?p=<token>.
// An optional text query parameter becomes the component's inner content.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.Trim(r.URL.Path, "/")
		body, err := reg.preview(r, name)
		if err != nil {
			reg.Logger.Error().Err(err).Str("type", name).Int("status", StatusFor(err)).Msg("preview failed")
			reg.OnError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	})
}

// preview renders into a buffer so a failing component never leaves a
// partial response behind.
func (reg *Registry) preview(r *http.Request, name string) ([]byte, error) {
	var opts Options
	if token := r.URL.Query().Get("p"); token != "" {
		decoded, err := DecodeOptions(reg.encoder, token, reg.sensitive)
		if err != nil {
			return nil, err
		}
		opts = decoded
	}

	var content templ.Component
	if text := r.URL.Query().Get("text"); text != "" {
		content = Text(text)
	}

	comp, err := reg.Build(name, opts, content)
	if err != nil {
		return nil, err
	}
	if reg.Page != nil && !IsHTMX(r) {
		comp = reg.Page(name, comp)
	}

	var buf bytes.Buffer
	if err := comp.Render(r.Context(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Lazy returns a placeholder that loads the preview of the named type when
// it scrolls into view.
func (reg *Registry) Lazy(prefix, name string, opts Options, placeholder templ.Component) templ.Component {
	return reg.deferred(prefix, name, opts, placeholder, "intersect once")
}

// Defer returns a placeholder that loads the preview after page load.
func (reg *Registry) Defer(prefix, name string, opts Options, placeholder templ.Component) templ.Component {
	return reg.deferred(prefix, name, opts, placeholder, "load")
}

func (reg *Registry) deferred(prefix, name string, opts Options, placeholder templ.Component, trigger string) templ.Component {
	u, err := reg.PreviewURL(prefix, name, opts)
	if err != nil {
		return ErrorComponent(err)
	}
	return loader(LoadAttrs(u, trigger), placeholder)
}
