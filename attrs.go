package hxui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Attrs is an HTML attribute map. Values may be nested maps, which flatten
// to dash-joined attribute names on output:
//
//	Attrs{"data": Attrs{"foo": 1}}  // data-foo="1"
type Attrs map[string]any

// Clone returns a deep copy of a, copying nested maps so the result can be
// merged into without touching the original.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge deep-merges over on top of a and returns the result. Nested maps
// merge key by key; any other value in over replaces the one in a. Neither
// input is modified.
func (a Attrs) Merge(over Attrs) Attrs {
	out := a.Clone()
	for k, v := range over {
		if base, ok := asAttrs(out[k]); ok {
			if nested, ok := asAttrs(v); ok {
				out[k] = base.Merge(nested)
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Flatten returns the attribute map with nested maps expanded into
// dash-joined names. Nested keys have underscores replaced by dashes, so
// data: {turbo_frame: "x"} becomes data-turbo-frame.
func (a Attrs) Flatten() map[string]any {
	out := make(map[string]any, len(a))
	flattenInto(out, "", a)
	return out
}

func flattenInto(out map[string]any, prefix string, a Attrs) {
	for k, v := range a {
		name := k
		if prefix != "" {
			name = prefix + "-" + strings.ReplaceAll(k, "_", "-")
		}
		if nested, ok := asAttrs(v); ok {
			flattenInto(out, name, nested)
			continue
		}
		out[name] = v
	}
}

// RenderAttrs serializes attributes as they appear inside an opening tag,
// each preceded by a space and sorted by name. Values are escaped with
// templ's escaping. true renders a bare attribute; false and nil are
// omitted; string lists are space-joined.
func RenderAttrs(a Attrs) string {
	flat := a.Flatten()
	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		value, ok := attrValue(flat[name])
		if !ok {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(templ.EscapeString(name))
		if value == nil {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(*value))
		sb.WriteByte('"')
	}
	return sb.String()
}

// attrValue converts v to its serialized form. A nil string pointer with
// ok=true is a bare (boolean) attribute.
func attrValue(v any) (*string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return nil, false
	case bool:
		if !val {
			return nil, false
		}
		return nil, true
	case string:
		s = val
	case []string:
		s = strings.Join(val, " ")
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		s = strings.Join(items, " ")
	default:
		s = fmt.Sprint(val)
	}
	return &s, true
}

// asAttrs reports whether v is a map usable as a nested attribute map.
// Decoded YAML and msgpack produce map[string]any rather than Attrs.
func asAttrs(v any) (Attrs, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, true
	case map[string]any:
		return Attrs(m), true
	case map[string]string:
		out := make(Attrs, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Attrs:
		return val.Clone()
	case map[string]any:
		return Attrs(val).Clone()
	case map[string]string:
		m, _ := asAttrs(val)
		return m
	case []string:
		return append([]string(nil), val...)
	case []any:
		return append([]any(nil), val...)
	}
	return v
}

// voidElements never carry content or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}
