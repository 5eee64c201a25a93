package abitype

import "errors"

var (
	// ErrUnknownType is returned when a leaf identifier is not a base
	// type and does not match the fixedMxN / ufixedMxN grammar.
	ErrUnknownType = errors.New("abitype: unknown base type")

	// ErrMalformedArray is returned for an array suffix that is present
	// but not of the form "[]" or "[N]" with N a canonical non-negative
	// integer literal.
	ErrMalformedArray = errors.New("abitype: malformed array suffix")

	// ErrMalformedTuple is returned for unbalanced parentheses or a
	// dangling comma inside a tuple signature.
	ErrMalformedTuple = errors.New("abitype: malformed tuple")

	// ErrMalformedFixed is returned for a fixed/ufixed identifier whose
	// M or N component does not begin with a nonzero digit, or is out of
	// range (M not a multiple of 8 up to 256, N not in [1,80]). A later
	// non-digit character in M or N gives ErrUnknownType instead.
	ErrMalformedFixed = errors.New("abitype: malformed fixed type")

	// ErrEmptySignature is returned for the empty string.
	ErrEmptySignature = errors.New("abitype: empty type signature")
)
