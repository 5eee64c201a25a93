package main

import (
	"fmt"
	"os"
)

// parseFlags parses CLI arguments into a Config. Returns the config, whether
// the caller should exit immediately, and the exit code.
func parseFlags(args []string) (Config, bool, int) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Printf("abiv3demo %s\n", version)
		return cfg, true, 0
	}

	return cfg, false, 0
}

// newFlagSet creates a flagSet that binds all CLI flags to the given Config.
func newFlagSet(cfg *Config) *flagSet {
	fs := newCustomFlagSet("abiv3demo")
	fs.StringVar(&cfg.Signature, "type", cfg.Signature, "canonical ABI type signature for the single argument")
	fs.Uint64Var(&cfg.FnNumber, "fn", cfg.FnNumber, "function id")
	fs.BoolVar(&cfg.External, "external", cfg.External, "use external (RLP-framed) wire mode instead of internal")
	fs.StringVar(&cfg.HexValue, "value", cfg.HexValue, "hex-encoded value (0x-prefixed) for the argument")
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5 (0=silent, 3=info, 4-5=debug)")
	fs.BoolVar(&cfg.Fingerprint, "fingerprint", cfg.Fingerprint, "print the Keccak-256 digest of the encoded message")
	return fs
}
