package hxui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs_Merge(t *testing.T) {
	base := Attrs{
		"id":   "a",
		"data": Attrs{"controller": "modal", "size": "sm"},
		"aria": map[string]any{"label": "x"},
	}
	over := Attrs{
		"id":   "b",
		"data": Attrs{"size": "lg"},
		"aria": "replaced",
	}

	merged := base.Merge(over)

	assert.Equal(t, Attrs{
		"id":   "b",
		"data": Attrs{"controller": "modal", "size": "lg"},
		"aria": "replaced",
	}, merged)

	// neither input changes
	assert.Equal(t, "a", base["id"])
	assert.Equal(t, Attrs{"controller": "modal", "size": "sm"}, base["data"])
	assert.Equal(t, Attrs{"size": "lg"}, over["data"])
}

func TestAttrs_MergeNil(t *testing.T) {
	var a Attrs
	assert.Equal(t, Attrs{"id": "x"}, a.Merge(Attrs{"id": "x"}))
	assert.Equal(t, Attrs{}, a.Merge(nil))
}

func TestAttrs_CloneIsDeep(t *testing.T) {
	orig := Attrs{"data": Attrs{"a": "1"}, "list": []string{"x"}}
	clone := orig.Clone()

	clone["data"].(Attrs)["a"] = "2"
	clone["list"].([]string)[0] = "y"

	assert.Equal(t, "1", orig["data"].(Attrs)["a"])
	assert.Equal(t, []string{"x"}, orig["list"])
}

func TestAttrs_Flatten(t *testing.T) {
	a := Attrs{
		"id": "x",
		"data": Attrs{
			"turbo_frame": "main",
			"action":      Attrs{"click": "go"},
		},
		"top_level": "kept",
	}

	assert.Equal(t, map[string]any{
		"id":                "x",
		"data-turbo-frame":  "main",
		"data-action-click": "go",
		"top_level":         "kept",
	}, a.Flatten())
}

func TestRenderAttrs(t *testing.T) {
	tests := []struct {
		name   string
		attrs  Attrs
		expect string
	}{
		{"empty", Attrs{}, ""},
		{"nil", nil, ""},
		{"sorted by name", Attrs{"id": "x", "class": "a b"}, ` class="a b" id="x"`},
		{"boolean true is bare", Attrs{"disabled": true}, ` disabled`},
		{"false and nil are omitted", Attrs{"hidden": false, "title": nil, "id": "x"}, ` id="x"`},
		{"numbers", Attrs{"tabindex": 0}, ` tabindex="0"`},
		{"string lists are joined", Attrs{"rel": []string{"noopener", "noreferrer"}}, ` rel="noopener noreferrer"`},
		{"nested maps", Attrs{
			"data": Attrs{"turbo_frame": "main", "count": 3},
			"aria": map[string]any{"label": "x"},
		}, ` aria-label="x" data-count="3" data-turbo-frame="main"`},
		{"values are escaped", Attrs{"title": `<a href="x">`}, ` title="&lt;a href=&#34;x&#34;&gt;"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, RenderAttrs(tt.attrs))
		})
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"img", "br", "input", "IMG", "hr"} {
		assert.True(t, IsVoidElement(tag), tag)
	}
	for _, tag := range []string{"div", "span", "dialog", "figure"} {
		assert.False(t, IsVoidElement(tag), tag)
	}
}
