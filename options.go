package hxui

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// PartOptions are caller overrides for one part.
type PartOptions struct {
	CSS         []string `msgpack:"css,omitempty" yaml:"css,omitempty"`
	HTML        Attrs    `msgpack:"html,omitempty" yaml:"html,omitempty"`
	TagName     string   `msgpack:"tag,omitempty" yaml:"tag_name,omitempty"`
	Controllers []string `msgpack:"ctl,omitempty" yaml:"controllers,omitempty"`
}

// IsZero reports whether no override is set.
func (p PartOptions) IsZero() bool {
	return len(p.CSS) == 0 && len(p.HTML) == 0 && p.TagName == "" && len(p.Controllers) == 0
}

// SlotContent fills one entry of a slot: the options handed to the slot's
// renderer and the inner content it wraps.
type SlotContent struct {
	Options Options
	Content templ.Component
}

// Options are the call-site arguments of a component.
//
// The embedded PartOptions are the unscoped shorthands (css, html,
// tag_name, controllers) and always target the component part. Parts holds
// overrides for named parts:
//
//	hxui.Options{
//	    PartOptions: hxui.PartOptions{CSS: []string{"shadow-lg"}},
//	    Parts: map[string]hxui.PartOptions{
//	        "title": {CSS: []string{"text-xl"}},
//	    },
//	}
type Options struct {
	PartOptions `yaml:",inline"`

	Parts     map[string]PartOptions   `msgpack:"parts,omitempty" yaml:"parts,omitempty"`
	Variants  []string                 `msgpack:"variants,omitempty" yaml:"variants,omitempty"`
	Modifiers []string                 `msgpack:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Size      string                   `msgpack:"size,omitempty" yaml:"size,omitempty"`
	Values    map[string]any           `msgpack:"values,omitempty" yaml:"values,omitempty"`
	Slots     map[string][]SlotContent `msgpack:"-" yaml:"-"`
}

// Part returns the overrides for the named part.
func (o Options) Part(name string) PartOptions {
	return o.Parts[name]
}

// WithSlot returns a copy of o with content appended to the named slot.
func (o Options) WithSlot(name string, opts Options, content templ.Component) Options {
	slots := make(map[string][]SlotContent, len(o.Slots)+1)
	for k, v := range o.Slots {
		slots[k] = append([]SlotContent(nil), v...)
	}
	slots[name] = append(slots[name], SlotContent{Options: opts, Content: content})
	o.Slots = slots
	return o
}

// Option suffixes recognised by ParseOptions for part-scoped keys.
const (
	suffixCSS         = "_css"
	suffixHTML        = "_html"
	suffixTagName     = "_tag_name"
	suffixControllers = "_controllers"
)

// ParseOptions converts the flat key-value option form into Options:
//
//	css, html, tag_name, controllers       component part shorthands
//	<part>_css, <part>_html, ...           overrides for a declared part
//	variant, variants, modifier, modifiers validated enumerations
//	size                                   unvalidated size bucket
//
// Part-scoped keys are only recognised for parts the schema declares; any
// other key is kept in Values, where Option reads it.
func ParseOptions(schema *Schema, raw map[string]any) (Options, error) {
	var opts Options
	for key, value := range raw {
		var err error
		switch key {
		case "css":
			opts.CSS, err = classList(value)
		case "html":
			opts.HTML, err = attrsValue(key, value)
		case "tag_name":
			opts.TagName, err = stringValue(key, value)
		case "controllers":
			opts.Controllers, err = classList(value)
		case "variant", "variants":
			var list []string
			list, err = classList(value)
			opts.Variants = append(opts.Variants, list...)
		case "modifier", "modifiers":
			var list []string
			list, err = classList(value)
			opts.Modifiers = append(opts.Modifiers, list...)
		case "size":
			opts.Size, err = stringValue(key, value)
		default:
			var handled bool
			handled, err = opts.parsePartKey(schema, key, value)
			if !handled {
				if opts.Values == nil {
					opts.Values = make(map[string]any)
				}
				opts.Values[key] = value
			}
		}
		if err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func (o *Options) parsePartKey(schema *Schema, key string, value any) (bool, error) {
	for _, def := range schema.Parts() {
		suffix, ok := strings.CutPrefix(key, def.Name)
		if !ok {
			continue
		}
		part := o.Parts[def.Name]
		var err error
		switch suffix {
		case suffixCSS:
			part.CSS, err = classList(value)
		case suffixHTML:
			part.HTML, err = attrsValue(key, value)
		case suffixTagName:
			part.TagName, err = stringValue(key, value)
		case suffixControllers:
			part.Controllers, err = classList(value)
		default:
			continue
		}
		if err != nil {
			return true, err
		}
		if o.Parts == nil {
			o.Parts = make(map[string]PartOptions)
		}
		o.Parts[def.Name] = part
		return true, nil
	}
	return false, nil
}

// classList flattens a string, a list of strings or nested lists into
// whitespace-separated tokens.
func classList(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.Fields(val), nil
	case []string:
		var out []string
		for _, s := range val {
			out = append(out, strings.Fields(s)...)
		}
		return out, nil
	case []any:
		var out []string
		for _, item := range val {
			list, err := classList(item)
			if err != nil {
				return nil, err
			}
			out = append(out, list...)
		}
		return out, nil
	case fmt.Stringer:
		return strings.Fields(val.String()), nil
	}
	return nil, fmt.Errorf("%w: expected string or list, got %T", ErrInvalidFormat, v)
}

func stringValue(key string, v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case fmt.Stringer:
		return val.String(), nil
	}
	return "", fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidFormat, key, v)
}

func attrsValue(key string, v any) (Attrs, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := asAttrs(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a map, got %T", ErrInvalidFormat, key, v)
	}
	return m.Clone(), nil
}
