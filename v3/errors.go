// Package v3 implements the V3 value codec: header/framing rules,
// schema dispatch, and the internal/external wire formats. It depends
// on abitype for schema nodes and rlp for the external-mode wire
// primitives, but never on each other's test helpers — the three
// packages compose through exported APIs only.
package v3

import "errors"

var (
	// ArityError is returned when a Tuple's value count does not match
	// its schema's element count.
	ArityError = errors.New("v3: tuple arity mismatch")

	// LengthMismatch is returned when an array value's length conflicts
	// with a fixed schema array_len.
	LengthMismatch = errors.New("v3: array length mismatch")

	// BadVersion is returned when the header's top two bits select the
	// reserved 10 or 11 mode.
	BadVersion = errors.New("v3: reserved header version")

	// BadBoolean is returned when a decoded boolean byte is neither
	// 0x00 nor 0x01.
	BadBoolean = errors.New("v3: invalid boolean byte")

	// Truncated is returned when the input is exhausted before a field
	// finishes decoding.
	Truncated = errors.New("v3: truncated input")

	// InvalidUtf8 is returned when a string field's bytes are not
	// valid UTF-8.
	InvalidUtf8 = errors.New("v3: invalid utf-8 in string field")

	// InvalidRlp is the umbrella error for RLP-layer failures surfaced
	// while decoding an external-mode field.
	InvalidRlp = errors.New("v3: invalid rlp")

	// OutOfRange is returned when an integer value does not fit the
	// schema's bit_len/signedness.
	OutOfRange = errors.New("v3: integer value out of range")

	// Unimplemented is returned for schema kinds whose value encoding
	// the core deliberately elides (Decimal).
	Unimplemented = errors.New("v3: value encoding not implemented for this type")
)
