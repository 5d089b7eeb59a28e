package encoding

import (
	"errors"
	"testing"
)

type testOptions struct {
	CSS     []string       `msgpack:"css"`
	TagName string         `msgpack:"tag"`
	Values  map[string]any `msgpack:"values"`
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	_, err := NewEncoder([]byte("short"))
	if err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}

	_, err = NewEncoder([]byte("this-is-a-32-byte-key-for-aes!!!"))
	if err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := testOptions{
		CSS:     []string{"card", "shadow-lg"},
		TagName: "figure",
		Values:  map[string]any{"label": "Open"},
	}

	for _, sensitive := range []bool{false, true} {
		encoded, err := enc.Encode(original, sensitive)
		if err != nil {
			t.Fatalf("Encode(sensitive=%v) failed: %v", sensitive, err)
		}

		var decoded testOptions
		if err := enc.Decode(encoded, sensitive, &decoded); err != nil {
			t.Fatalf("Decode(sensitive=%v) failed: %v", sensitive, err)
		}

		if decoded.TagName != original.TagName {
			t.Errorf("TagName mismatch: got %q, want %q", decoded.TagName, original.TagName)
		}
		if len(decoded.CSS) != 2 || decoded.CSS[1] != "shadow-lg" {
			t.Errorf("CSS mismatch: got %v, want %v", decoded.CSS, original.CSS)
		}
		if decoded.Values["label"] != "Open" {
			t.Errorf("Values mismatch: got %v", decoded.Values)
		}
	}
}

func TestSignatureVerificationFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(testOptions{TagName: "div"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Tamper with the signature
	tampered := encoded[:len(encoded)-2] + "XX"

	var decoded testOptions
	err = enc.Decode(tampered, false, &decoded)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Expected ErrSignatureInvalid, got: %v", err)
	}
}

func TestDecryptionFailure(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	encoded, err := enc.Encode(testOptions{TagName: "div"}, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tampered := encoded[:len(encoded)-2] + "XX"

	var decoded testOptions
	err = enc.Decode(tampered, true, &decoded)
	if err == nil {
		t.Error("Expected error for tampered ciphertext, got nil")
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	var decoded testOptions
	err = enc.Decode("invalidbase64withoutseparator", false, &decoded)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	encoded, err := enc1.Encode(testOptions{TagName: "div"}, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded testOptions
	if err := enc2.Decode(encoded, false, &decoded); err == nil {
		t.Error("Expected error when decoding with different key")
	}
}
