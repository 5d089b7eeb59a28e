package hxui

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTMX(t *testing.T) {
	tests := []struct {
		name   string
		header string
		expect bool
	}{
		{"with HX-Request true", "true", true},
		{"with HX-Request false", "false", false},
		{"without header", "", false},
		{"with other value", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}

			result := IsHTMX(req)
			if result != tt.expect {
				t.Errorf("IsHTMX() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func TestRenderHelper(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := Render(rec, req, Text("a < b")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/html; charset=utf-8", got)
	}
	if got := rec.Body.String(); got != "a &lt; b" {
		t.Errorf("body = %q, want %q", got, "a &lt; b")
	}
}

func TestLoadAttrs(t *testing.T) {
	attrs := LoadAttrs("/_ui/card?p=abc", "intersect once")

	expect := map[string]string{
		"hx-get":     "/_ui/card?p=abc",
		"hx-swap":    "outerHTML",
		"hx-trigger": "intersect once",
	}
	for k, v := range expect {
		if attrs[k] != v {
			t.Errorf("attrs[%q] = %v, want %q", k, attrs[k], v)
		}
	}

	if _, ok := LoadAttrs("/x", "")["hx-trigger"]; ok {
		t.Error("empty trigger should not set hx-trigger")
	}
}
