package main

import (
	"errors"

	"github.com/abiv3/abiv3/abitype"
)

// Config holds the resolved CLI configuration for a single encode_function
// call against one schema argument.
type Config struct {
	Signature   string
	FnNumber    uint64
	External    bool
	HexValue    string
	Verbosity   int
	Fingerprint bool
}

// DefaultConfig returns the configuration used when no flags are given: a
// dynamic byte string argument, function id 0, external mode.
func DefaultConfig() Config {
	return Config{
		Signature: "bytes",
		FnNumber:  0,
		External:  true,
		HexValue:  "0x",
		Verbosity: 3,
	}
}

// Validate checks the configuration is well-formed before any encode work
// begins.
func (c *Config) Validate() error {
	if c.Signature == "" {
		return errors.New("signature must not be empty")
	}
	if _, err := abitype.Parse(c.Signature); err != nil {
		return err
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return errors.New("verbosity must be in range 0-5")
	}
	return nil
}
