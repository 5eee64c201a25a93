package v3

import "math/big"

// Value is the sum type carried across the public API: encoding and
// decoding dispatch on a schema node's Kind, never on Value's own
// shape, so only one field of a given Value is meaningful for any
// particular call — which one is determined entirely by the schema.
type Value struct {
	Bool  bool
	Int   *big.Int
	Bytes []byte
	Str   string
	Items []Value
}

// BoolValue wraps a boolean for a Boolean schema node.
func BoolValue(b bool) Value { return Value{Bool: b} }

// IntValue wraps an integer for an Integer schema node.
func IntValue(i *big.Int) Value { return Value{Int: i} }

// BytesValue wraps a raw byte string for a non-string byte-array
// schema node (bytes, bytesN, function).
func BytesValue(b []byte) Value { return Value{Bytes: b} }

// StringValue wraps a UTF-8 string for a `string` schema node.
func StringValue(s string) Value { return Value{Str: s} }

// ArrayValue wraps an ordered element sequence for an Array-of-X or
// Tuple schema node.
func ArrayValue(items []Value) Value { return Value{Items: items} }
