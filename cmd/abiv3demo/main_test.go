package main

import "testing"

func TestRunEncodesBoolean(t *testing.T) {
	code := run([]string{"-type", "bool", "-fn", "1", "-value", "0x01"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRunEncodesBytes(t *testing.T) {
	code := run([]string{"-type", "bytes", "-value", "0x646f67", "-fingerprint"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRunRejectsUnsupportedValue(t *testing.T) {
	code := run([]string{"-type", "uint256[]", "-value", "0x01"})
	if code == 0 {
		t.Fatal("expected non-zero exit for unsupported array element")
	}
}

func TestRunRejectsBadValueHex(t *testing.T) {
	code := run([]string{"-type", "bytes", "-value", "notHex"})
	if code == 0 {
		t.Fatal("expected non-zero exit for malformed -value")
	}
}
