package v3

import (
	"bytes"
	"testing"
)

func TestEncodeHeaderExternalBelowOverflow(t *testing.T) {
	tests := []struct {
		fn   uint64
		want byte
	}{
		{0, 0x40},
		{1, 0x41},
		{31, 0x5F},
		{62, 0x7E},
	}
	for _, tt := range tests {
		got := encodeHeaderExternal(tt.fn)
		if len(got) != 1 || got[0] != tt.want {
			t.Fatalf("encodeHeaderExternal(%d) = %x, want [%x]", tt.fn, got, tt.want)
		}
	}
}

func TestEncodeHeaderExternalOverflow(t *testing.T) {
	tests := []struct {
		fn   uint64
		want []byte
	}{
		{63, []byte{0x7F, 0x80}},
		{64, []byte{0x7F, 0x01}},
	}
	for _, tt := range tests {
		got := encodeHeaderExternal(tt.fn)
		if !bytes.Equal(got, tt.want) {
			t.Fatalf("encodeHeaderExternal(%d) = %x, want %x", tt.fn, got, tt.want)
		}
	}
}

func TestHeaderIdentityExternal(t *testing.T) {
	for _, fn := range []uint64{0, 1, 31, 62, 63, 64, 100000} {
		enc := encodeHeaderExternal(fn)
		got, consumed, err := decodeHeaderExternal(enc)
		if err != nil {
			t.Fatalf("decodeHeaderExternal(fn=%d): %v", fn, err)
		}
		if got != fn {
			t.Fatalf("decodeHeaderExternal(fn=%d) = %d", fn, got)
		}
		if consumed != len(enc) {
			t.Fatalf("consumed = %d, want %d", consumed, len(enc))
		}
	}
}

func TestHeaderIdentityInternal(t *testing.T) {
	for _, fn := range []uint32{0, 1, 100000, 0xFFFFFFFF} {
		enc := encodeHeaderInternal(fn)
		got, consumed, err := decodeHeaderInternal(enc)
		if err != nil {
			t.Fatalf("decodeHeaderInternal(fn=%d): %v", fn, err)
		}
		if got != fn {
			t.Fatalf("decodeHeaderInternal(fn=%d) = %d", fn, got)
		}
		if consumed != 5 {
			t.Fatalf("consumed = %d, want 5", consumed)
		}
	}
}

func TestDecodeHeaderExternalRejectsLongStringOverflow(t *testing.T) {
	// data[1] = 0xB8 is a long-string RLP header (lenOfLen=1); the
	// overflow field must always be a short string (leading byte <= 0xB7).
	data := []byte{0x7F, 0xB8, 0x01, 0xFF}
	if _, _, err := decodeHeaderExternal(data); err != InvalidRlp {
		t.Fatalf("err = %v, want InvalidRlp", err)
	}
}

func TestDecodeHeaderExternalRejectsListOverflow(t *testing.T) {
	data := []byte{0x7F, 0xC1, 0x01}
	if _, _, err := decodeHeaderExternal(data); err != InvalidRlp {
		t.Fatalf("err = %v, want InvalidRlp", err)
	}
}

func TestHeaderModeReserved(t *testing.T) {
	for _, h := range []byte{0x80, 0xC0} {
		if _, err := headerMode(h); err != BadVersion {
			t.Fatalf("headerMode(%#x) = %v, want BadVersion", h, err)
		}
	}
}
