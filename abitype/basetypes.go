package abitype

import "strconv"

// baseTypes maps every leaf identifier the grammar recognizes without
// parsing fixedMxN/ufixedMxN to its precomputed Type. It is built once
// at package init and never mutated afterward, so every Parse call for
// a base type returns a shared, reusable node instead of allocating.
var baseTypes map[string]*Type

func init() {
	baseTypes = make(map[string]*Type)

	baseTypes["bool"] = booleanType()

	// address is a 160-bit unsigned integer with its own canonical name,
	// not an alias for uint160 — the wire and value layers never see
	// "address" spelled out as "uint160".
	baseTypes["address"] = integerType("address", true, 160)

	// function is the 24-byte (address || 4-byte selector) byte array.
	// It carries raw bytes, never a UTF-8 string, on the value side.
	baseTypes["function"] = byteArrayType("function", 24, false)

	// bytes is the dynamic byte array; string is the dynamic UTF-8 array.
	// These are the only two base types where is_string distinguishes
	// otherwise-identical wire shapes.
	baseTypes["bytes"] = byteArrayType("bytes", -1, false)
	baseTypes["string"] = byteArrayType("string", -1, true)

	for n := 1; n <= 32; n++ {
		name := "bytes" + strconv.Itoa(n)
		baseTypes[name] = byteArrayType(name, n, false)
	}

	for m := 8; m <= 256; m += 8 {
		uname := "uint" + strconv.Itoa(m)
		iname := "int" + strconv.Itoa(m)
		baseTypes[uname] = integerType(uname, true, m)
		baseTypes[iname] = integerType(iname, false, m)
	}
}

func lookupBaseType(name string) (*Type, bool) {
	t, ok := baseTypes[name]
	return t, ok
}
