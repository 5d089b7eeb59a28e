package hxui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the output of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content, attributes
// and status codes.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestRender builds and renders a component and returns testable output.
//
// Use this for unit tests of a component type: configuration errors
// (unknown parts, invalid variants) are returned as-is.
//
//	result, err := hxui.TestRender(components.Card, opts, hxui.Text("Body"))
//	if !result.HTMLContains(`class="card shadow-lg"`) {
//	    t.Fatal("missing card classes")
//	}
func TestRender(r Renderer, opts Options, content templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), r, opts, content)
}

// TestRenderWithContext is TestRender with a custom context.
func TestRenderWithContext(ctx context.Context, r Renderer, opts Options, content templ.Component) (*TestResult, error) {
	comp, err := r.Build(opts, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestPreview issues a GET against the registry's preview handler.
//
//	u, _ := reg.PreviewURL("", "card", opts)
//	result := hxui.TestPreview(reg, u)
func TestPreview(reg *Registry, url string) *TestResult {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// HasAttr checks if the first element with the given tag carries
// name="value".
func (r *TestResult) HasAttr(tag, name, value string) bool {
	re := regexp.MustCompile(`<` + regexp.QuoteMeta(tag) + `(\s[^>]*)?>`)
	open := re.FindString(r.HTML)
	return strings.Contains(open, " "+name+`="`+templ.EscapeString(value)+`"`)
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
