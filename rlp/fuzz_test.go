package rlp

import "testing"

func FuzzDecodeBytes(f *testing.F) {
	f.Add([]byte{0x80})
	f.Add([]byte{0x83, 0x64, 0x6f, 0x67})
	f.Add([]byte{0x01})
	f.Add([]byte{0x7f})
	f.Add([]byte{0x82, 0x04, 0x00})
	f.Add([]byte{0xc0})
	f.Add([]byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67})

	f.Fuzz(func(t *testing.T, data []byte) {
		s := NewStreamFromBytes(data)
		_, _ = s.Bytes()

		s = NewStreamFromBytes(data)
		_, _ = s.Uint64()

		s = NewStreamFromBytes(data)
		_, _ = s.BigIntSigned()

		if len(data) > 0 {
			_, _ = Wrap(data, 0, len(data))
		}
	})
}

func FuzzEncodeBytesRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte("hello world"))

	f.Fuzz(func(t *testing.T, data []byte) {
		enc := EncodeBytes(data)
		s := NewStreamFromBytes(enc)
		got, err := s.Bytes()
		if err != nil {
			t.Fatalf("round trip failed to decode: %v", err)
		}
		if len(got) != len(data) {
			t.Fatalf("round trip length mismatch: got %d want %d", len(got), len(data))
		}
		for i := range got {
			if got[i] != data[i] {
				t.Fatalf("round trip mismatch at %d", i)
			}
		}
	})
}
