package hxui

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for component configuration.
var (
	ErrUnknownPart      = errors.New("hxui: unknown part")
	ErrInvalidVariant   = errors.New("hxui: invalid variant")
	ErrInvalidModifier  = errors.New("hxui: invalid modifier")
	ErrUnknownSlot      = errors.New("hxui: unknown slot")
	ErrSlotCardinality  = errors.New("hxui: slot accepts a single entry")
	ErrSealed           = errors.New("hxui: configuration is resolved")
	ErrNotSealed        = errors.New("hxui: configuration is still building")
	ErrUnknownType      = errors.New("hxui: unknown component type")
	ErrInvalidFormat    = errors.New("hxui: invalid parameter format")
	ErrSignatureInvalid = errors.New("hxui: signature verification failed")
	ErrDecryptFailed    = errors.New("hxui: parameter decryption failed")
)

// PartError reports a hook invoked with a part name the schema does not
// declare.
type PartError struct {
	Part  string
	Valid []string
}

func (e *PartError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("hxui: unknown part %q (no parts are declared)", e.Part)
	}
	return fmt.Sprintf("hxui: unknown part %q, valid parts: %s", e.Part, strings.Join(e.Valid, ", "))
}

func (e *PartError) Unwrap() error { return ErrUnknownPart }

// ValueError reports a variant or modifier outside the type's declared set.
type ValueError struct {
	Kind  string // "variant" or "modifier"
	Value string
	Valid []string
}

func (e *ValueError) Error() string {
	valid := "none declared"
	if len(e.Valid) > 0 {
		valid = strings.Join(e.Valid, ", ")
	}
	return fmt.Sprintf("hxui: invalid %s %q, valid %ss: %s", e.Kind, e.Value, e.Kind, valid)
}

func (e *ValueError) Unwrap() error {
	if e.Kind == "modifier" {
		return ErrInvalidModifier
	}
	return ErrInvalidVariant
}

// IsUnknownPart checks if err is an unknown-part error.
func IsUnknownPart(err error) bool {
	return errors.Is(err, ErrUnknownPart)
}

// IsInvalidOption checks if err is an invalid variant or modifier error.
func IsInvalidOption(err error) bool {
	return errors.Is(err, ErrInvalidVariant) || errors.Is(err, ErrInvalidModifier)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
