package v3

import (
	"unicode/utf8"
)

// encodeByteArray handles bytes/string/bytesN/function. A fixed byte
// array (bytesN, function) is emitted raw with no framing at all — its
// length comes from the schema alone. A dynamic byte array is framed
// the same way as boolean/integer/object arrays: an `rlp_int(len)`
// length prefix from writeLength, followed by the raw payload bytes —
// not a self-describing RLP string.
func encodeByteArray(dst []byte, arrayLen int, data []byte) ([]byte, error) {
	if arrayLen >= 0 {
		if len(data) != arrayLen {
			return nil, LengthMismatch
		}
		return append(dst, data...), nil
	}
	dst, err := writeLength(dst, arrayLen, len(data))
	if err != nil {
		return nil, err
	}
	return append(dst, data...), nil
}

// decodeByteArray reverses encodeByteArray, returning the consumed
// byte count.
func decodeByteArray(data []byte, arrayLen int, isString bool) (Value, int, error) {
	if arrayLen >= 0 {
		if len(data) < arrayLen {
			return Value{}, 0, Truncated
		}
		raw := data[:arrayLen]
		if isString {
			if !utf8.Valid(raw) {
				return Value{}, 0, InvalidUtf8
			}
			return StringValue(string(raw)), arrayLen, nil
		}
		return BytesValue(append([]byte(nil), raw...)), arrayLen, nil
	}

	n, lenConsumed, err := readLength(data, arrayLen)
	if err != nil {
		return Value{}, 0, err
	}
	rest := data[lenConsumed:]
	if len(rest) < n {
		return Value{}, 0, Truncated
	}
	raw := rest[:n]
	if isString {
		if !utf8.Valid(raw) {
			return Value{}, 0, InvalidUtf8
		}
		return StringValue(string(raw)), lenConsumed + n, nil
	}
	return BytesValue(append([]byte(nil), raw...)), lenConsumed + n, nil
}
