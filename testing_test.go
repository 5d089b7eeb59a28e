package hxui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
)

type ctxKey struct{}

// mockRenderer implements Renderer without a component type.
type mockRenderer struct {
	buildErr  error
	renderErr error
}

func (m *mockRenderer) Name() string { return "mock" }

func (m *mockRenderer) Build(opts Options, content templ.Component) (templ.Component, error) {
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if m.renderErr != nil {
			return m.renderErr
		}
		name, _ := opts.Values["name"].(string)
		if v, ok := ctx.Value(ctxKey{}).(string); ok {
			name = v
		}
		_, err := io.WriteString(w, `<div class="mock">Hello, `+name+`!</div>`)
		return err
	}), nil
}

func TestTestRender_Success(t *testing.T) {
	result, err := TestRender(&mockRenderer{}, Options{Values: map[string]any{"name": "World"}}, nil)
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if !result.HTMLContains("Hello, World!") {
		t.Errorf("HTML does not contain expected content: %s", result.HTML)
	}

	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", result.StatusCode, http.StatusOK)
	}
}

func TestTestRender_BuildError(t *testing.T) {
	expectedErr := errors.New("build failed")

	result, err := TestRender(&mockRenderer{buildErr: expectedErr}, Options{}, nil)
	if err != expectedErr {
		t.Errorf("error = %v, want %v", err, expectedErr)
	}
	if result != nil {
		t.Error("expected nil result on error")
	}
}

func TestTestRender_RenderError(t *testing.T) {
	expectedErr := errors.New("render failed")

	_, err := TestRender(&mockRenderer{renderErr: expectedErr}, Options{}, nil)
	if err != expectedErr {
		t.Errorf("error = %v, want %v", err, expectedErr)
	}
}

func TestTestRenderWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "Context")

	result, err := TestRenderWithContext(ctx, &mockRenderer{}, Options{}, nil)
	if err != nil {
		t.Fatalf("TestRenderWithContext() error = %v", err)
	}
	if !result.HTMLContains("Hello, Context!") {
		t.Errorf("context value not used: %s", result.HTML)
	}
}

func TestTestResult_HTMLContains(t *testing.T) {
	result := &TestResult{HTML: `<div class="container"><span>Hello World</span></div>`}

	tests := []struct {
		substr string
		want   bool
	}{
		{"Hello World", true},
		{"container", true},
		{"<span>", true},
		{"Missing", false},
		{"", true}, // empty string is always contained
	}

	for _, tt := range tests {
		t.Run(tt.substr, func(t *testing.T) {
			if got := result.HTMLContains(tt.substr); got != tt.want {
				t.Errorf("HTMLContains(%q) = %v, want %v", tt.substr, got, tt.want)
			}
		})
	}
}

func TestTestResult_HTMLContainsAll(t *testing.T) {
	result := &TestResult{HTML: `<div class="container"><span>Hello World</span></div>`}

	if !result.HTMLContainsAll("Hello", "World", "container") {
		t.Error("expected HTMLContainsAll to return true for all present substrings")
	}

	if result.HTMLContainsAll("Hello", "Missing") {
		t.Error("expected HTMLContainsAll to return false when any substring is missing")
	}
}

func TestTestResult_HTMLContainsAny(t *testing.T) {
	result := &TestResult{HTML: `<div>Hello World</div>`}

	if !result.HTMLContainsAny("Missing", "Hello", "NotHere") {
		t.Error("expected HTMLContainsAny to return true when any substring is present")
	}

	if result.HTMLContainsAny("Missing", "NotHere", "Absent") {
		t.Error("expected HTMLContainsAny to return false when no substrings are present")
	}
}

func TestTestResult_HasAttr(t *testing.T) {
	result := &TestResult{HTML: `<div><img alt="a &amp; b" src="/x.png"><span id="s"></span></div>`}

	tests := []struct {
		tag, name, value string
		want             bool
	}{
		{"img", "src", "/x.png", true},
		{"img", "alt", "a & b", true},
		{"span", "id", "s", true},
		{"span", "src", "/x.png", false},
		{"section", "id", "s", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.name, func(t *testing.T) {
			if got := result.HasAttr(tt.tag, tt.name, tt.value); got != tt.want {
				t.Errorf("HasAttr(%q, %q, %q) = %v, want %v", tt.tag, tt.name, tt.value, got, tt.want)
			}
		})
	}
}

func TestTestResult_Status(t *testing.T) {
	result := &TestResult{StatusCode: http.StatusNotFound, Headers: http.Header{"Allow": {"GET"}}}

	if result.IsOK() {
		t.Error("IsOK() = true for 404")
	}
	if !result.HasStatus(http.StatusNotFound) {
		t.Error("HasStatus(404) = false")
	}
	if got := result.GetHeader("Allow"); got != "GET" {
		t.Errorf("GetHeader(Allow) = %q, want GET", got)
	}
}
