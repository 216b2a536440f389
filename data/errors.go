package data

import "fmt"

// ErrNegativeLength is returned by sized reads that are passed a negative
// length, and by Slice when passed a negative index or length.
var ErrNegativeLength = fmt.Errorf("eolib: length must not be negative")

// errNotChunkedReadingMode is returned by NextChunk when the reader is
// not in chunked reading mode.
var errNotChunkedReadingMode = fmt.Errorf("eolib: not in chunked reading mode")

// ValueOutOfBoundsError is returned when a value written to the wire
// exceeds the maximum value representable by the target EO integer type.
// Per the protocol's error taxonomy this is a programming bug and is not
// expected to be recovered from.
type ValueOutOfBoundsError struct {
	Value int
	Max   int
}

func (e *ValueOutOfBoundsError) Error() string {
	return fmt.Sprintf("eolib: value %d exceeds maximum of %d", e.Value, e.Max)
}

// StringLengthError is returned by fixed-length string writes when the
// supplied string does not satisfy the expected length.
type StringLengthError struct {
	String   string
	Expected int
	Padded   bool
}

func (e *StringLengthError) Error() string {
	if e.Padded {
		return fmt.Sprintf("eolib: padded string %q is too large for a length of %d", e.String, e.Expected)
	}
	return fmt.Sprintf("eolib: string %q does not have expected length of %d", e.String, e.Expected)
}
