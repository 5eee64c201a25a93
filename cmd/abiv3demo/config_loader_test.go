package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	cfg, exit, code := parseFlags(nil)
	if exit {
		t.Fatalf("unexpected exit, code=%d", code)
	}
	if cfg.Signature != "bytes" || cfg.FnNumber != 0 || !cfg.External {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, exit, code := parseFlags([]string{"-type", "uint256", "-fn", "42", "-external=false", "-value", "0x2a"})
	if exit {
		t.Fatalf("unexpected exit, code=%d", code)
	}
	if cfg.Signature != "uint256" || cfg.FnNumber != 42 || cfg.External {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.HexValue != "0x2a" {
		t.Fatalf("HexValue = %q", cfg.HexValue)
	}
}

func TestParseFlagsVersion(t *testing.T) {
	_, exit, code := parseFlags([]string{"-version"})
	if !exit || code != 0 {
		t.Fatalf("exit=%v code=%d, want exit=true code=0", exit, code)
	}
}

func TestParseFlagsInvalid(t *testing.T) {
	_, exit, code := parseFlags([]string{"-unknownflag"})
	if !exit || code != 2 {
		t.Fatalf("exit=%v code=%d, want exit=true code=2", exit, code)
	}
}

func TestConfigValidateRejectsBadSignature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Signature = "notatype"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestConfigValidateRejectsBadVerbosity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verbosity = 9
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range verbosity")
	}
}
