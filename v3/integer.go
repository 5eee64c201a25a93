package v3

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/abiv3/abiv3/abitype"
	"github.com/abiv3/abiv3/rlp"
)

// encodeInteger writes val against an Integer/Decimal-shaped schema
// node (bit_len, unsigned) in the given mode.
func encodeInteger(dst []byte, node *abitype.Type, val *big.Int, mode Mode) ([]byte, error) {
	if node.Unsigned() {
		if val.Sign() < 0 || val.BitLen() > node.BitLen() {
			return nil, OutOfRange
		}
	} else if len(minimalSignedBytes(val))*8 > node.BitLen() {
		return nil, OutOfRange
	}
	if mode == Internal {
		return encodeIntegerInternal(dst, node, val)
	}
	return encodeIntegerExternal(dst, val, node.Unsigned())
}

func encodeIntegerInternal(dst []byte, node *abitype.Type, val *big.Int) ([]byte, error) {
	w := node.BitLen() / 8
	if node.Unsigned() && node.BitLen() <= 256 {
		var u uint256.Int
		if overflow := u.SetFromBig(val); overflow {
			return nil, OutOfRange
		}
		return append(dst, u.PaddedBytes(w)...), nil
	}

	minimal := minimalSignedBytes(val)
	if len(minimal) > w {
		return nil, OutOfRange
	}
	pad := byte(0x00)
	if val.Sign() < 0 {
		pad = 0xFF
	}
	out := make([]byte, w)
	for i := 0; i < w-len(minimal); i++ {
		out[i] = pad
	}
	copy(out[w-len(minimal):], minimal)
	return append(dst, out...), nil
}

func decodeIntegerInternal(s []byte, node *abitype.Type) (*big.Int, error) {
	w := node.BitLen() / 8
	if len(s) < w {
		return nil, Truncated
	}
	v := new(big.Int).SetBytes(s[:w])
	if !node.Unsigned() && w > 0 && s[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*w))
		v.Sub(v, mod)
	}
	return v, nil
}

func encodeIntegerExternal(dst []byte, val *big.Int, unsigned bool) ([]byte, error) {
	if val.Sign() == 0 {
		return append(dst, 0x80), nil
	}
	var minimal []byte
	if unsigned {
		if val.Sign() < 0 {
			return nil, OutOfRange
		}
		minimal = minimalUnsignedBytes(val)
	} else {
		minimal = minimalSignedBytes(val)
	}
	return rlp.AppendBytes(dst, minimal), nil
}

func decodeIntegerExternal(stream *rlp.Stream, unsigned bool) (*big.Int, error) {
	if unsigned {
		return stream.BigInt()
	}
	return stream.BigIntSigned()
}

// minimalUnsignedBytes returns the minimal big-endian representation of
// a non-negative value (no sign-extension byte).
func minimalUnsignedBytes(val *big.Int) []byte {
	if val.Sign() == 0 {
		return nil
	}
	return val.Bytes()
}

// minimalSignedBytes returns the minimal two's-complement big-endian
// representation of val, including a sign-extension byte where the
// magnitude's own leading bit would otherwise misrepresent the sign.
func minimalSignedBytes(val *big.Int) []byte {
	if val.Sign() == 0 {
		return nil
	}
	if val.Sign() > 0 {
		b := val.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// Negative: find the smallest width W such that the two's
	// complement representation of val in W bytes has its top bit set
	// and round-trips back to val.
	mag := new(big.Int).Neg(val)
	width := (mag.BitLen() + 7) / 8
	if width == 0 {
		width = 1
	}
	for {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*width))
		twos := new(big.Int).Add(val, mod)
		b := twos.Bytes()
		if len(b) < width {
			pad := make([]byte, width-len(b))
			b = append(pad, b...)
		}
		if b[0]&0x80 != 0 {
			return b
		}
		width++
	}
}
