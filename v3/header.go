package v3

import (
	"math/big"

	"github.com/abiv3/abiv3/rlp"
)

// Mode selects the wire format used for a message's field encodings.
type Mode int

const (
	// Internal selects fixed-width packed integers.
	Internal Mode = iota
	// External selects RLP-framed minimal big-endian integers.
	External
)

const (
	modeInternal byte = 0x00
	modeExternal byte = 0x01
	modeMask          = 0xC0
	fnMask            = 0x3F
	fnOverflow        = 0x3F
)

// headerMode reads the top two bits of a header byte.
func headerMode(h byte) (Mode, error) {
	switch h & modeMask >> 6 {
	case 0:
		return Internal, nil
	case 1:
		return External, nil
	default:
		return 0, BadVersion
	}
}

// encodeHeaderExternal produces the header byte and optional overflow
// tail for external mode.
func encodeHeaderExternal(fn uint64) []byte {
	if fn < fnOverflow {
		return []byte{0x40 | byte(fn)}
	}
	h := byte(0x40 | fnOverflow)
	overflow := new(big.Int).SetUint64(fn - fnOverflow)
	tail := rlp.EncodeBytes(minimalUnsignedBytes(overflow))
	return append([]byte{h}, tail...)
}

// decodeHeaderExternal parses the external-mode header starting at
// data[0], returning the function id and the number of bytes consumed.
func decodeHeaderExternal(data []byte) (fn uint64, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, Truncated
	}
	h := data[0]
	low := h & fnMask
	if low < fnOverflow {
		return uint64(low), 1, nil
	}
	if len(data) < 2 {
		return 0, 0, Truncated
	}
	if data[1] > 0xb7 {
		// The overflow field is always a short RLP string (<=55 bytes
		// of payload): a leading byte past 0xb7 is long-string,
		// list-headed, or otherwise malformed.
		return 0, 0, InvalidRlp
	}
	s := rlp.NewStreamFromBytes(data[1:])
	overflow, err := s.Bytes()
	if err != nil {
		return 0, 0, InvalidRlp
	}
	consumed = 1 + s.Pos()
	if len(overflow) == 0 {
		return fnOverflow, consumed, nil
	}
	return fnOverflow + new(big.Int).SetBytes(overflow).Uint64(), consumed, nil
}

// encodeHeaderInternal produces the 5-byte internal-mode header: the
// 0x00 mode byte followed by fn as a 4-byte big-endian uint32.
func encodeHeaderInternal(fn uint32) []byte {
	return []byte{modeInternal, byte(fn >> 24), byte(fn >> 16), byte(fn >> 8), byte(fn)}
}

// decodeHeaderInternal parses the internal-mode header, returning the
// function id and the number of bytes consumed (always 5 on success).
func decodeHeaderInternal(data []byte) (fn uint32, consumed int, err error) {
	if len(data) < 5 {
		return 0, 0, Truncated
	}
	fn = uint32(data[1])<<24 | uint32(data[2])<<16 | uint32(data[3])<<8 | uint32(data[4])
	return fn, 5, nil
}
