// Package hxuiecho provides Echo framework integration for hxui previews.
//
// Mount the preview endpoint onto an Echo instance or group:
//
//	e := echo.New()
//	reg := hxuiecho.Mount(e)
//	components.Register(reg)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := hxuiecho.MountGroup(g)
//	components.Register(reg)
package hxuiecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxui"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key       []byte
	path      string
	sensitive bool
}

// WithKey sets the signing key for preview tokens.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path prefix for preview routes.
// Defaults to "/_ui/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithSensitive encrypts preview tokens instead of signing them.
func WithSensitive() Option {
	return func(o *options) {
		o.sensitive = true
	}
}

// Mount creates a registry and mounts the preview handler on an Echo instance.
//
//	e := echo.New()
//	reg := hxuiecho.Mount(e, hxuiecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *hxui.Registry {
	reg, path := newRegistry(opts)
	e.Any(path+"*", handler(reg))
	return reg
}

// MountGroup creates a registry and mounts the preview handler on an Echo group.
// This allows previews to share middleware with the group (auth, logging, etc.).
func MountGroup(g *echo.Group, opts ...Option) *hxui.Registry {
	reg, path := newRegistry(opts)
	g.Any(path+"*", handler(reg))
	return reg
}

// handler forwards the wildcard remainder of the route to the registry as
// /<type>, so the group prefix does not need to be known.
func handler(reg *hxui.Registry) echo.HandlerFunc {
	h := reg.Handler()
	return func(c echo.Context) error {
		r := c.Request().Clone(c.Request().Context())
		r.URL.Path = "/" + c.Param("*")
		r.URL.RawPath = ""
		h.ServeHTTP(c.Response(), r)
		return nil
	}
}

func newRegistry(opts []Option) (*hxui.Registry, string) {
	o := &options{path: "/_ui/"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxuiecho: failed to generate random key: %v", err))
		}
	}

	reg := hxui.NewRegistry(key)
	if o.sensitive {
		reg.Sensitive()
	}
	return reg, o.path
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    card, err := components.Card.Build(opts, body)
//	    if err != nil {
//	        return err
//	    }
//	    return hxuiecho.Render(c, card)
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
