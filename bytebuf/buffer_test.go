package bytebuf

import (
	"bytes"
	"testing"
)

func TestWriterPutUint(t *testing.T) {
	w := NewWriter()
	w.PutUint(0x0102, 2)
	w.PutByte(0xFF)
	w.PutBytes([]byte("dog"))
	want := []byte{0x01, 0x02, 0xFF, 'd', 'o', 'g'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("Bytes() = %x, want %x", w.Bytes(), want)
	}
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutUint(1024, 4)
	w.PutBytes([]byte("cat"))

	r := NewReader(w.Bytes())
	v, err := r.ReadUint(4)
	if err != nil {
		t.Fatal(err)
	}
	if v != 1024 {
		t.Fatalf("ReadUint = %d, want 1024", v)
	}
	data, err := r.ReadBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "cat" {
		t.Fatalf("ReadBytes = %q", data)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderRewind(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	if _, err := r.ReadBytes(2); err != nil {
		t.Fatal(err)
	}
	if err := r.Rewind(0); err != nil {
		t.Fatal(err)
	}
	b, err := r.ReadBytes(4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Fatalf("ReadBytes after rewind = %v", b)
	}
}

func TestReaderOutOfRange(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadBytes(3); err != ErrOutOfRange {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}
