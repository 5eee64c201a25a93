package v3

import (
	"math"

	"github.com/abiv3/abiv3/abitype"
	"github.com/abiv3/abiv3/rlp"
)

// encodeBufferPool backs each EncodeFunction call's scratch buffer: one
// Get/Put pair per call, per rlp.BufferPool's contract.
var encodeBufferPool = rlp.NewBufferPool()

// EncodeFunction serializes values against schema under fn, choosing
// the external (RLP-framed) or internal (fixed-width) wire format per
// external.
func EncodeFunction(fn uint64, schema []*abitype.Type, values []Value, external bool) ([]byte, error) {
	if len(schema) != len(values) {
		return nil, ArityError
	}

	bufPtr := encodeBufferPool.Get()
	defer encodeBufferPool.Put(bufPtr)
	dst := *bufPtr

	mode := Internal
	if external {
		mode = External
		dst = append(dst, encodeHeaderExternal(fn)...)
	} else {
		if fn > math.MaxUint32 {
			return nil, OutOfRange
		}
		dst = append(dst, encodeHeaderInternal(uint32(fn))...)
	}

	for i, node := range schema {
		var err error
		dst, err = encodeValue(dst, node, values[i], mode)
		if err != nil {
			return nil, err
		}
	}

	*bufPtr = dst
	return append([]byte(nil), dst...), nil
}

// DecodeFunction deserializes a framed message against schema,
// returning the function id the header carried along with the decoded
// values.
func DecodeFunction(schema []*abitype.Type, data []byte) (fn uint64, values []Value, err error) {
	if len(data) == 0 {
		return 0, nil, Truncated
	}
	mode, err := headerMode(data[0])
	if err != nil {
		return 0, nil, err
	}

	var consumed int
	if mode == Internal {
		fn32, c, herr := decodeHeaderInternal(data)
		if herr != nil {
			return 0, nil, herr
		}
		fn, consumed = uint64(fn32), c
	} else {
		fnv, c, herr := decodeHeaderExternal(data)
		if herr != nil {
			return 0, nil, herr
		}
		fn, consumed = fnv, c
	}

	rest := data[consumed:]
	values = make([]Value, len(schema))
	total := 0
	for i, node := range schema {
		v, n, derr := decodeValue(rest[total:], node, mode)
		if derr != nil {
			return 0, nil, derr
		}
		values[i] = v
		total += n
	}
	return fn, values, nil
}

// encodeValue dispatches on the schema node's Kind, never on val's own
// shape.
func encodeValue(dst []byte, node *abitype.Type, val Value, mode Mode) ([]byte, error) {
	switch node.Kind() {
	case abitype.KindBoolean:
		b := byte(0x00)
		if val.Bool {
			b = 0x01
		}
		return append(dst, b), nil

	case abitype.KindInteger:
		return encodeInteger(dst, node, val.Int, mode)

	case abitype.KindDecimal:
		return nil, Unimplemented

	case abitype.KindArray:
		return encodeArrayValue(dst, node, val, mode)

	case abitype.KindTuple:
		if len(val.Items) != len(node.Elements()) {
			return nil, ArityError
		}
		var err error
		for i, elem := range node.Elements() {
			dst, err = encodeValue(dst, elem, val.Items[i], mode)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		return nil, Unimplemented
	}
}

// decodeValue mirrors encodeValue, returning the decoded value and the
// number of bytes of data it consumed.
func decodeValue(data []byte, node *abitype.Type, mode Mode) (Value, int, error) {
	switch node.Kind() {
	case abitype.KindBoolean:
		if len(data) == 0 {
			return Value{}, 0, Truncated
		}
		switch data[0] {
		case 0x00:
			return BoolValue(false), 1, nil
		case 0x01:
			return BoolValue(true), 1, nil
		default:
			return Value{}, 0, BadBoolean
		}

	case abitype.KindInteger:
		if mode == Internal {
			v, err := decodeIntegerInternal(data, node)
			if err != nil {
				return Value{}, 0, err
			}
			return IntValue(v), node.BitLen() / 8, nil
		}
		stream := rlp.NewStreamFromBytes(data)
		v, err := decodeIntegerExternal(stream, node.Unsigned())
		if err != nil {
			return Value{}, 0, InvalidRlp
		}
		return IntValue(v), stream.Pos(), nil

	case abitype.KindDecimal:
		return Value{}, 0, Unimplemented

	case abitype.KindArray:
		return decodeArrayValue(data, node, mode)

	case abitype.KindTuple:
		items := make([]Value, len(node.Elements()))
		total := 0
		for i, elem := range node.Elements() {
			v, n, err := decodeValue(data[total:], elem, mode)
			if err != nil {
				return Value{}, 0, err
			}
			items[i] = v
			total += n
		}
		return ArrayValue(items), total, nil

	default:
		return Value{}, 0, Unimplemented
	}
}

// encodeArrayValue dispatches an Array node to the byte-array,
// boolean-bitpack, or generic element-wise encoder.
func encodeArrayValue(dst []byte, node *abitype.Type, val Value, mode Mode) ([]byte, error) {
	if node.IsBytes() {
		data := val.Bytes
		if node.IsString() {
			data = []byte(val.Str)
		}
		return encodeByteArray(dst, node.ArrayLen(), data)
	}

	elem := node.Element()
	if elem.Kind() == abitype.KindBoolean {
		bools := make([]bool, len(val.Items))
		for i, item := range val.Items {
			bools[i] = item.Bool
		}
		return encodeBoolArray(dst, node.ArrayLen(), bools)
	}

	n := len(val.Items)
	var err error
	dst, err = writeLength(dst, node.ArrayLen(), n)
	if err != nil {
		return nil, err
	}
	for _, item := range val.Items {
		dst, err = encodeValue(dst, elem, item, mode)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// decodeArrayValue mirrors encodeArrayValue.
func decodeArrayValue(data []byte, node *abitype.Type, mode Mode) (Value, int, error) {
	if node.IsBytes() {
		return decodeByteArray(data, node.ArrayLen(), node.IsString())
	}

	elem := node.Element()
	if elem.Kind() == abitype.KindBoolean {
		bools, consumed, err := decodeBoolArray(data, node.ArrayLen())
		if err != nil {
			return Value{}, 0, err
		}
		items := make([]Value, len(bools))
		for i, b := range bools {
			items[i] = BoolValue(b)
		}
		return ArrayValue(items), consumed, nil
	}

	n, lenConsumed, err := readLength(data, node.ArrayLen())
	if err != nil {
		return Value{}, 0, err
	}
	total := lenConsumed
	items := make([]Value, n)
	for i := 0; i < n; i++ {
		v, c, err := decodeValue(data[total:], elem, mode)
		if err != nil {
			return Value{}, 0, err
		}
		items[i] = v
		total += c
	}
	return ArrayValue(items), total, nil
}
