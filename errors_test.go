package hxui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pthm/hxui/lib/encoding"
)

var sentinels = []error{
	ErrUnknownPart,
	ErrInvalidVariant,
	ErrInvalidModifier,
	ErrUnknownSlot,
	ErrSlotCardinality,
	ErrSealed,
	ErrNotSealed,
	ErrUnknownType,
	ErrInvalidFormat,
	ErrSignatureInvalid,
	ErrDecryptFailed,
}

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for _, err := range sentinels {
		if !strings.HasPrefix(err.Error(), "hxui:") {
			t.Errorf("Error %q should start with 'hxui:'", err.Error())
		}
	}
}

func TestPartError(t *testing.T) {
	tests := []struct {
		name   string
		err    *PartError
		expect string
	}{
		{
			name:   "with declared parts",
			err:    &PartError{Part: "footer", Valid: []string{"component", "title"}},
			expect: `hxui: unknown part "footer", valid parts: component, title`,
		},
		{
			name:   "nothing declared",
			err:    &PartError{Part: "footer"},
			expect: `hxui: unknown part "footer" (no parts are declared)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expect {
				t.Errorf("Error() = %q, want %q", got, tt.expect)
			}
			if !IsUnknownPart(tt.err) {
				t.Error("PartError should unwrap to ErrUnknownPart")
			}
			if !IsUnknownPart(fmt.Errorf("card: %w", tt.err)) {
				t.Error("wrapped PartError should unwrap to ErrUnknownPart")
			}
		})
	}
}

func TestValueError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValueError
		expect   string
		sentinel error
	}{
		{
			name:     "variant",
			err:      &ValueError{Kind: "variant", Value: "ghost", Valid: []string{"primary", "secondary"}},
			expect:   `hxui: invalid variant "ghost", valid variants: primary, secondary`,
			sentinel: ErrInvalidVariant,
		},
		{
			name:     "modifier",
			err:      &ValueError{Kind: "modifier", Value: "wide", Valid: []string{"compact"}},
			expect:   `hxui: invalid modifier "wide", valid modifiers: compact`,
			sentinel: ErrInvalidModifier,
		},
		{
			name:     "none declared",
			err:      &ValueError{Kind: "variant", Value: "ghost"},
			expect:   `hxui: invalid variant "ghost", valid variants: none declared`,
			sentinel: ErrInvalidVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expect {
				t.Errorf("Error() = %q, want %q", got, tt.expect)
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if !IsInvalidOption(tt.err) {
				t.Error("IsInvalidOption() = false, want true")
			}
		})
	}
}

func TestIsDecryptionError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"wrapped ErrSignatureInvalid", fmt.Errorf("wrapped: %w", ErrSignatureInvalid), true},
		{"ErrUnknownType", ErrUnknownType, false},
		{"ErrInvalidFormat", ErrInvalidFormat, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsDecryptionError(tt.err)
			if result != tt.expect {
				t.Errorf("IsDecryptionError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestErrorComponent(t *testing.T) {
	comp := ErrorComponent(errors.New("test render error"))

	var buf bytes.Buffer
	if err := comp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("ErrorComponent.Render() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `class="hxui-error"`) {
		t.Errorf("ErrorComponent output should contain hxui-error class: %s", html)
	}
	if !strings.Contains(html, "Render error: test render error") {
		t.Errorf("ErrorComponent output should contain error message: %s", html)
	}
}

func TestErrorComponent_HTMLEscaping(t *testing.T) {
	// Test that error messages are HTML-escaped to prevent XSS
	comp := ErrorComponent(errors.New(`<script>alert("xss")</script>`))

	var buf bytes.Buffer
	if err := comp.Render(context.Background(), &buf); err != nil {
		t.Fatalf("ErrorComponent.Render() error = %v", err)
	}

	html := buf.String()
	if strings.Contains(html, "<script>") {
		t.Errorf("ErrorComponent should escape HTML: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("ErrorComponent should contain HTML-escaped message: %s", html)
	}
}

func TestWrapDecodeError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectWrapped  error
		isDecryptError bool
	}{
		{"nil error", nil, nil, false},
		{"encoding.ErrInvalidFormat", encoding.ErrInvalidFormat, ErrInvalidFormat, false},
		{"encoding.ErrSignatureInvalid", encoding.ErrSignatureInvalid, ErrSignatureInvalid, true},
		{"encoding.ErrDecryptFailed", encoding.ErrDecryptFailed, ErrDecryptFailed, true},
		{"other error passthrough", errors.New("other"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WrapDecodeError(tt.err)

			if tt.expectWrapped != nil {
				if !errors.Is(result, tt.expectWrapped) {
					t.Errorf("WrapDecodeError(%v) = %v, want %v", tt.err, result, tt.expectWrapped)
				}
			}

			if tt.isDecryptError && !IsDecryptionError(result) {
				t.Errorf("WrapDecodeError(%v) should be detected by IsDecryptionError", tt.err)
			}
		})
	}
}
