package abitype

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		"bool", "address", "function", "bytes", "string", "bytes32",
		"uint256", "int8", "uint8[]", "uint8[3]", "bool[2][]",
		"(uint256,bool)", "()", "(uint256,(bool,address))",
		"fixed128x18", "ufixed8x1", "fixed008x3", "uint8[03]",
		"(uint256", "uint256)",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, sig string) {
		ty, err := Parse(sig)
		if err != nil {
			return
		}
		if ty.CanonicalName() != sig {
			t.Fatalf("Parse(%q) accepted but CanonicalName() = %q", sig, ty.CanonicalName())
		}
		// Re-parsing the canonical name must succeed and be idempotent.
		ty2, err := Parse(ty.CanonicalName())
		if err != nil {
			t.Fatalf("re-parse of canonical name %q failed: %v", ty.CanonicalName(), err)
		}
		if ty2.CanonicalName() != ty.CanonicalName() {
			t.Fatalf("canonical name not idempotent: %q != %q", ty2.CanonicalName(), ty.CanonicalName())
		}
	})
}
