package hxui

import (
	"fmt"
	"slices"
	"strings"
)

// bundle is the live state of one part during a render.
type bundle struct {
	defaultTagName     string
	userTagName        string
	defaultCSS         []string
	userCSS            []string
	defaultHTML        Attrs
	userHTML           Attrs
	defaultControllers []string
	userControllers    []string
}

// Resolved is the final tag, class string, controller list and attribute
// map of one part.
type Resolved struct {
	TagName     string
	CSS         string
	Controllers []string
	HTML        Attrs
}

// Config merges schema defaults, setup-time defaults and caller options
// into per-part output for one render.
//
// A Config starts out building: the mutation hooks (SetTagName, AddCSS,
// AddHTML, AddBehaviorController) are accepted and the resolution accessors
// return ErrNotSealed. Seal moves it to resolved, after which only the
// accessors work. There is no way back.
type Config struct {
	schema *Schema
	opts   Options
	parts  map[string]*bundle
	sealed bool
}

// BuildConfig creates the per-part bundles for schema from opts and
// validates the supplied variants and modifiers.
func BuildConfig(schema *Schema, opts Options) (*Config, error) {
	if schema == nil {
		schema = ResolveSchema(nil)
	}
	for name := range opts.Parts {
		if !schema.HasPart(name) {
			return nil, schema.partError(name)
		}
	}

	c := &Config{
		schema: schema,
		opts:   opts,
		parts:  make(map[string]*bundle, len(schema.order)),
	}
	for _, def := range schema.Parts() {
		user := opts.Parts[def.Name]
		b := &bundle{
			defaultTagName:  def.TagName,
			userTagName:     user.TagName,
			defaultHTML:     Attrs{},
			userCSS:         slices.Clone(user.CSS),
			userHTML:        user.HTML.Clone(),
			userControllers: slices.Clone(user.Controllers),
		}
		if def.Name == ComponentPart {
			b.userCSS = append(b.userCSS, opts.CSS...)
			b.userHTML = b.userHTML.Merge(opts.HTML)
			if opts.TagName != "" {
				b.userTagName = opts.TagName
			}
			b.userControllers = append(b.userControllers, opts.Controllers...)
		}
		c.parts[def.Name] = b
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks supplied variants and modifiers against the declared
// sets. Size is accepted as-is.
func (c *Config) validate() error {
	for _, v := range c.opts.Variants {
		if !slices.Contains(c.schema.variants, v) {
			return &ValueError{Kind: "variant", Value: v, Valid: c.schema.Variants()}
		}
	}
	for _, m := range c.opts.Modifiers {
		if !slices.Contains(c.schema.modifiers, m) {
			return &ValueError{Kind: "modifier", Value: m, Valid: c.schema.Modifiers()}
		}
	}
	return nil
}

// Schema returns the schema the configuration was built from.
func (c *Config) Schema() *Schema {
	return c.schema
}

// Options returns the raw call-site options.
func (c *Config) Options() Options {
	return c.opts
}

// Option reads a bespoke caller option, returning def when the key is
// absent or nil.
func (c *Config) Option(key string, def any) any {
	if v, ok := c.opts.Values[key]; ok && v != nil {
		return v
	}
	return def
}

// HasVariant reports whether the caller selected variant v.
func (c *Config) HasVariant(v string) bool {
	return slices.Contains(c.opts.Variants, v)
}

// HasModifier reports whether the caller selected modifier m.
func (c *Config) HasModifier(m string) bool {
	return slices.Contains(c.opts.Modifiers, m)
}

// Size returns the caller-selected size, or "" when none was given.
func (c *Config) Size() string {
	return c.opts.Size
}

// Sealed reports whether the configuration has been resolved.
func (c *Config) Sealed() bool {
	return c.sealed
}

// Seal ends the building phase.
func (c *Config) Seal() {
	c.sealed = true
}

func (c *Config) mutable(part string) (*bundle, error) {
	if c.sealed {
		return nil, fmt.Errorf("%w: cannot modify part %q", ErrSealed, part)
	}
	b, ok := c.parts[part]
	if !ok {
		return nil, c.schema.partError(part)
	}
	return b, nil
}

func (c *Config) resolved(part string) (*bundle, error) {
	b, ok := c.parts[part]
	if !ok {
		return nil, c.schema.partError(part)
	}
	if !c.sealed {
		return nil, fmt.Errorf("%w: cannot read part %q", ErrNotSealed, part)
	}
	return b, nil
}

// SetTagName replaces the default tag of part. A caller-supplied tag name
// still wins.
func (c *Config) SetTagName(part, name string) error {
	b, err := c.mutable(part)
	if err != nil {
		return err
	}
	b.defaultTagName = name
	return nil
}

// AddCSS appends classes to the defaults of part. Call order is kept in the
// final class string.
func (c *Config) AddCSS(part string, classes ...string) error {
	b, err := c.mutable(part)
	if err != nil {
		return err
	}
	b.defaultCSS = append(b.defaultCSS, classes...)
	return nil
}

// AddHTML deep-merges attrs into the default attributes of part.
func (c *Config) AddHTML(part string, attrs Attrs) error {
	b, err := c.mutable(part)
	if err != nil {
		return err
	}
	b.defaultHTML = b.defaultHTML.Merge(attrs)
	return nil
}

// AddBehaviorController appends controller identifiers to part.
func (c *Config) AddBehaviorController(part string, ids ...string) error {
	b, err := c.mutable(part)
	if err != nil {
		return err
	}
	b.defaultControllers = append(b.defaultControllers, ids...)
	return nil
}

// TagName returns the resolved tag of part.
func (c *Config) TagName(part string) (string, error) {
	b, err := c.resolved(part)
	if err != nil {
		return "", err
	}
	return b.tagName(), nil
}

// CSS returns the resolved class string of part.
func (c *Config) CSS(part string) (string, error) {
	b, err := c.resolved(part)
	if err != nil {
		return "", err
	}
	return b.css(), nil
}

// Controllers returns the behavior controllers of part, defaults first.
func (c *Config) Controllers(part string) ([]string, error) {
	b, err := c.resolved(part)
	if err != nil {
		return nil, err
	}
	return b.controllers(), nil
}

// HTML returns the resolved attribute map of part.
func (c *Config) HTML(part string) (Attrs, error) {
	b, err := c.resolved(part)
	if err != nil {
		return nil, err
	}
	return b.html(), nil
}

// Resolve returns everything the markup step needs for part.
func (c *Config) Resolve(part string) (Resolved, error) {
	b, err := c.resolved(part)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{
		TagName:     b.tagName(),
		CSS:         b.css(),
		Controllers: b.controllers(),
		HTML:        b.html(),
	}, nil
}

func (b *bundle) tagName() string {
	if b.userTagName != "" {
		return b.userTagName
	}
	return b.defaultTagName
}

func (b *bundle) css() string {
	return JoinClasses(b.defaultCSS, b.userCSS)
}

func (b *bundle) controllers() []string {
	out := make([]string, 0, len(b.defaultControllers)+len(b.userControllers))
	for _, id := range append(slices.Clone(b.defaultControllers), b.userControllers...) {
		out = append(out, strings.Fields(id)...)
	}
	return out
}

// html layers the generated class/data seed, the component defaults and the
// caller attributes, in that order.
func (b *bundle) html() Attrs {
	seed := Attrs{}
	if css := b.css(); css != "" {
		seed["class"] = css
	}
	if ids := b.controllers(); len(ids) > 0 {
		seed["data"] = Attrs{"controller": strings.Join(ids, " ")}
	}
	return seed.Merge(b.defaultHTML).Merge(b.userHTML)
}

// JoinClasses flattens class lists into one string: blank entries are
// dropped and every run of whitespace becomes a single space.
func JoinClasses(lists ...[]string) string {
	var tokens []string
	for _, list := range lists {
		for _, entry := range list {
			tokens = append(tokens, strings.Fields(entry)...)
		}
	}
	return strings.Join(tokens, " ")
}
