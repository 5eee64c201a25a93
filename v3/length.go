package v3

import "github.com/abiv3/abiv3/rlp"

// writeLength emits the dynamic-array length prefix `rlp_int(len)` when
// array_len is -1, or validates actual against a fixed array_len
// without emitting anything.
func writeLength(dst []byte, arrayLen, actual int) ([]byte, error) {
	if arrayLen < 0 {
		return rlp.AppendUint64(dst, uint64(actual)), nil
	}
	if actual != arrayLen {
		return nil, LengthMismatch
	}
	return dst, nil
}

// readLength recovers an array's element count: for a fixed array it
// is the schema's array_len with zero bytes consumed; for a dynamic
// array it is read as an RLP integer from the front of data.
func readLength(data []byte, arrayLen int) (length, consumed int, err error) {
	if arrayLen >= 0 {
		return arrayLen, 0, nil
	}
	s := rlp.NewStreamFromBytes(data)
	n, err := s.Uint64()
	if err != nil {
		return 0, 0, InvalidRlp
	}
	return int(n), s.Pos(), nil
}
