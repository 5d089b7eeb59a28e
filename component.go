package hxui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Type is a component type: a name, an immutable Schema, a chain of setup
// functions and a render function.
//
// Types are defined once, usually as package-level variables, and are
// read-only afterwards:
//
//	var Card = hxui.Define("card",
//	    hxui.Part("title", hxui.Tag("h2")),
//	    hxui.Parts("body", "actions"),
//	    hxui.Variants("bordered", "compact"),
//	    hxui.OnSetup(func(s *hxui.Setup) {
//	        s.AddCSS("component", "card")
//	        s.AddCSS("title", "card-title")
//	    }),
//	)
//
// Extend derives a subtype. The subtype inherits every part, variant,
// modifier, size and slot of its parent, runs the parent's setup before its
// own and keeps the parent's render function unless it declares one.
type Type struct {
	name   string
	parent *Type
	schema *Schema
	setup  []SetupFunc
	render RenderFunc
}

// OnSetup adds a setup function to the type being defined.
func OnSetup(fn SetupFunc) Declaration {
	return func(d *definition) {
		d.setup = append(d.setup, fn)
	}
}

// OnRender sets the render function of the type being defined.
func OnRender(fn RenderFunc) Declaration {
	return func(d *definition) {
		d.render = fn
	}
}

// Define creates a root component type.
func Define(name string, decls ...Declaration) *Type {
	return defineType(nil, name, decls)
}

// Extend creates a subtype of t.
func (t *Type) Extend(name string, decls ...Declaration) *Type {
	return defineType(t, name, decls)
}

func defineType(parent *Type, name string, decls []Declaration) *Type {
	var parentSchema *Schema
	if parent != nil {
		parentSchema = parent.schema
	}
	d := &definition{schema: parentSchema.clone()}
	for _, decl := range decls {
		decl(d)
	}

	t := &Type{
		name:   name,
		parent: parent,
		schema: d.schema,
		render: d.render,
	}
	if parent != nil {
		t.setup = append(t.setup, parent.setup...)
		if t.render == nil {
			t.render = parent.render
		}
	}
	t.setup = append(t.setup, d.setup...)
	return t
}

// Name returns the type name.
func (t *Type) Name() string {
	return t.name
}

// Parent returns the type t was extended from, or nil.
func (t *Type) Parent() *Type {
	return t.parent
}

// Schema returns the resolved schema of the type.
func (t *Type) Schema() *Schema {
	return t.schema
}

// ParseOptions converts flat key-value options using the type's schema.
func (t *Type) ParseOptions(raw map[string]any) (Options, error) {
	return ParseOptions(t.schema, raw)
}

// New builds a fully resolved component instance.
//
// The caller options are merged and validated, the setup chain runs, slot
// contents are built, and the configuration is sealed, all before New
// returns. The first error from any of these steps is returned and no
// component is produced.
func (t *Type) New(opts Options, content templ.Component) (*Component, error) {
	cfg, err := BuildConfig(t.schema, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}

	s := &Setup{cfg: cfg}
	for _, fn := range t.setup {
		fn(s)
		if s.err != nil {
			return nil, fmt.Errorf("%s: %w", t.name, s.err)
		}
	}

	c := &Component{
		typ:     t,
		config:  cfg,
		content: content,
		slots:   make(map[string][]templ.Component),
	}
	if err := c.buildSlots(opts.Slots); err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}

	cfg.Seal()
	return c, nil
}

// Build implements Renderer.
func (t *Type) Build(opts Options, content templ.Component) (templ.Component, error) {
	c, err := t.New(opts, content)
	if err != nil {
		return nil, err
	}
	return c.Render(), nil
}

// Render is Build for use inside render functions, where an error can only
// surface when the markup is written. The configuration still happens
// up front.
func (t *Type) Render(opts Options, content templ.Component) templ.Component {
	comp, err := t.Build(opts, content)
	if err != nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return err
		})
	}
	return comp
}

func (c *Component) buildSlots(fills map[string][]SlotContent) error {
	for name, entries := range fills {
		def, ok := c.typ.schema.Slot(name)
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownSlot, name)
		}
		if !def.Many && len(entries) > 1 {
			return fmt.Errorf("%w: slot %q got %d", ErrSlotCardinality, name, len(entries))
		}
		renderer := def.Renderer
		if renderer == nil {
			renderer = Passthrough
		}
		for _, entry := range entries {
			comp, err := renderer.Build(entry.Options, entry.Content)
			if err != nil {
				return fmt.Errorf("slot %q: %w", name, err)
			}
			c.slots[name] = append(c.slots[name], comp)
		}
	}
	return nil
}

// Passthrough renders its content inside a single component part and
// accepts the full css/html/tag_name/controllers option surface. Slots
// declared without a renderer use it.
var Passthrough = Define("passthrough")

// Setup is handed to a type's SetupFunc chain. Its hooks change part
// defaults; caller options are read through Option and the variant,
// modifier and size accessors.
//
// The first failing hook (an unknown part, or a hook used after the
// component was resolved) is recorded, turns later hooks into no-ops and is
// returned from Type.New.
type Setup struct {
	cfg *Config
	err error
}

func (s *Setup) record(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// SetTagName replaces the default tag of part.
func (s *Setup) SetTagName(part, name string) {
	if s.err == nil {
		s.record(s.cfg.SetTagName(part, name))
	}
}

// AddCSS appends default classes to part.
func (s *Setup) AddCSS(part string, classes ...string) {
	if s.err == nil {
		s.record(s.cfg.AddCSS(part, classes...))
	}
}

// AddHTML deep-merges default attributes into part.
func (s *Setup) AddHTML(part string, attrs Attrs) {
	if s.err == nil {
		s.record(s.cfg.AddHTML(part, attrs))
	}
}

// AddBehaviorController appends a behavior controller to part.
func (s *Setup) AddBehaviorController(part string, ids ...string) {
	if s.err == nil {
		s.record(s.cfg.AddBehaviorController(part, ids...))
	}
}

// Fail aborts construction with err.
func (s *Setup) Fail(err error) {
	s.record(err)
}

// Err returns the first recorded error.
func (s *Setup) Err() error {
	return s.err
}

// Option reads a bespoke caller option, returning def when it is absent or
// nil.
func (s *Setup) Option(key string, def any) any {
	return s.cfg.Option(key, def)
}

// Options returns the raw caller options.
func (s *Setup) Options() Options {
	return s.cfg.Options()
}

// HasVariant reports whether the caller selected variant v.
func (s *Setup) HasVariant(v string) bool { return s.cfg.HasVariant(v) }

// HasModifier reports whether the caller selected modifier m.
func (s *Setup) HasModifier(m string) bool { return s.cfg.HasModifier(m) }

// Size returns the caller-selected size.
func (s *Setup) Size() string { return s.cfg.Size() }

// HasSlot reports whether the caller filled the named slot.
func (s *Setup) HasSlot(name string) bool {
	return len(s.cfg.opts.Slots[name]) > 0
}

// Component is a resolved component instance. All of its configuration
// happened in Type.New; the methods here only read.
type Component struct {
	typ     *Type
	config  *Config
	content templ.Component
	slots   map[string][]templ.Component
}

// Type returns the component's type.
func (c *Component) Type() *Type {
	return c.typ
}

// Config returns the sealed configuration.
func (c *Component) Config() *Config {
	return c.config
}

// Content returns the inner content passed to New, or nil.
func (c *Component) Content() templ.Component {
	return c.content
}

// Option reads a bespoke caller option.
func (c *Component) Option(key string, def any) any {
	return c.config.Option(key, def)
}

// HasVariant reports whether the caller selected variant v.
func (c *Component) HasVariant(v string) bool { return c.config.HasVariant(v) }

// HasModifier reports whether the caller selected modifier m.
func (c *Component) HasModifier(m string) bool { return c.config.HasModifier(m) }

// Size returns the caller-selected size.
func (c *Component) Size() string { return c.config.Size() }

// RenderedTagName returns the final tag of part.
func (c *Component) RenderedTagName(part string) (string, error) {
	return c.config.TagName(part)
}

// RenderedCSS returns the final class string of part.
func (c *Component) RenderedCSS(part string) (string, error) {
	return c.config.CSS(part)
}

// RenderedHTML returns the final attribute map of part.
func (c *Component) RenderedHTML(part string) (Attrs, error) {
	return c.config.HTML(part)
}

// HasSlot reports whether the named slot was filled.
func (c *Component) HasSlot(name string) bool {
	return len(c.slots[name]) > 0
}

// Slot returns the first entry of the named slot, or nil.
func (c *Component) Slot(name string) templ.Component {
	if entries := c.slots[name]; len(entries) > 0 {
		return entries[0]
	}
	return nil
}

// Slots returns every entry of the named slot.
func (c *Component) Slots(name string) []templ.Component {
	return c.slots[name]
}

// Render returns the component's markup.
func (c *Component) Render() templ.Component {
	if c.typ.render != nil {
		return c.typ.render(c)
	}
	return c.Part(ComponentPart, c.content)
}

// Part emits one element for the named part using its resolved tag and
// attributes. children become the element's content; nil children are
// skipped. Without children the element is empty, and void tags such as
// img are written without a closing tag.
//
// An undeclared part name fails when the markup is written.
func (c *Component) Part(name string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r, err := c.config.Resolve(name)
		if err != nil {
			return err
		}
		tag := templ.EscapeString(r.TagName)
		if _, err := io.WriteString(w, "<"+tag+RenderAttrs(r.HTML)+">"); err != nil {
			return err
		}
		if IsVoidElement(r.TagName) {
			return nil
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Each renders the components one after another.
func Each(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, comp := range components {
			if comp == nil {
				continue
			}
			if err := comp.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Text returns a component writing s, HTML-escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
