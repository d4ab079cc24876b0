package delta

import "errors"

// Sentinel errors returned by fallible Delta/attribute operations. All
// failures are surfaced as values; nothing in this package panics on
// malformed caller input.
var (
	// ErrIncompatibleLengths names two operation sequences whose lengths
	// don't line up. No function in this package returns it: Compose and
	// Transform have no error result.
	ErrIncompatibleLengths = errors.New("delta: incompatible lengths")

	// ErrNotADocument is returned by DiffDoc when either Delta contains a
	// retain or delete operation.
	ErrNotADocument = errors.New("delta: not a document")

	// ErrWrongValueType is returned by AttrVal's typed accessors when
	// called against the wrong variant.
	ErrWrongValueType = errors.New("delta: wrong attribute value type")

	// ErrSerdeNestedArray is returned when decoding JSON that contains
	// an array anywhere an AttrVal/InsVal is expected.
	ErrSerdeNestedArray = errors.New("delta: arrays are not a valid attribute or insert value")

	// ErrSerdeUnknownType is returned when decoding JSON whose shape
	// doesn't match the wire schema (§6).
	ErrSerdeUnknownType = errors.New("delta: unknown value type in json")

	// ErrNotAnUnsigned is returned when a JSON number is negative or
	// non-integral where an unsigned length/count is required.
	ErrNotAnUnsigned = errors.New("delta: expected a non-negative integer")

	// ErrEmptyIterator names an iterator read past its end. No function
	// in this package returns it: Iterator.Next past the end yields an
	// unbounded retain, and Iterator.Peek reports false.
	ErrEmptyIterator = errors.New("delta: iterator has no next element")

	// ErrEmptyMinVector names the internal invariant violation of a
	// lockstep scan in which neither side has an operation left. No
	// function in this package returns it.
	ErrEmptyMinVector = errors.New("delta: empty vector computing minimum length")

	// ErrEmptyLastVector names the internal invariant violation of a
	// Delta expected to be non-empty having no last operation. No
	// function in this package returns it.
	ErrEmptyLastVector = errors.New("delta: empty vector fetching last operation")
)
