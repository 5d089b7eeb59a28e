package hxui

import (
	"errors"

	"github.com/pthm/hxui/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// EncodeOptions turns opts into a URL-safe token. Slot contents are not
// part of the token.
func EncodeOptions(enc *Encoder, opts Options, sensitive bool) (string, error) {
	return enc.Encode(opts, sensitive)
}

// DecodeOptions reverses EncodeOptions.
func DecodeOptions(enc *Encoder, token string, sensitive bool) (Options, error) {
	var opts Options
	if err := enc.Decode(token, sensitive, &opts); err != nil {
		return Options{}, WrapDecodeError(err)
	}
	return opts, nil
}

// WrapDecodeError maps encoding package errors onto hxui sentinel errors.
func WrapDecodeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	case errors.Is(err, encoding.ErrInvalidFormat):
		return ErrInvalidFormat
	}
	return err
}
