package latticelab

import "fmt"

// =============================================================================
// Shared Types
// =============================================================================

// Range is a closed integer interval [Lo, Hi]. Lattice point enumeration uses
// one Range per basis dimension; basis generation uses a Range to bound shear
// factors and random entries.
type Range struct {
	Lo, Hi int64
}

// Width returns the number of integers in the range, Hi - Lo + 1.
// It is only meaningful when the range is valid (Lo <= Hi).
func (r Range) Width() int64 {
	return r.Hi - r.Lo + 1
}

// Validate reports an unordered range as a ValueError.
func (r Range) Validate() error {
	if r.Lo > r.Hi {
		return ValueErrorf("range lower bound %d exceeds upper bound %d", r.Lo, r.Hi)
	}
	return nil
}

// =============================================================================
// Error Kinds
// =============================================================================

// The library classifies all validation failures into three kinds, matchable
// with errors.As:
//
//   - ShapeError: dimensional mismatches (non-square matrix, ragged rows,
//     vector-length mismatch, range-count mismatch, singular spanning vectors)
//   - ValueError: invalid values of the right shape (non-positive modulus or
//     dimension, unordered range, oversized enumeration)
//   - TypeError: non-integer entries on the dynamic parse path (strings,
//     nulls, booleans, non-integral floats, nested values)

// ShapeError reports a dimensional mismatch.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string { return e.Msg }

// ShapeErrorf constructs a ShapeError with a formatted message.
func ShapeErrorf(format string, args ...interface{}) *ShapeError {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// ValueError reports a well-shaped but invalid value.
type ValueError struct {
	Msg string
	Err error // optional underlying cause
}

func (e *ValueError) Error() string { return e.Msg }

func (e *ValueError) Unwrap() error { return e.Err }

// ValueErrorf constructs a ValueError with a formatted message.
func ValueErrorf(format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}

// WrapValueError constructs a ValueError that wraps an underlying error.
func WrapValueError(err error, format string, args ...interface{}) *ValueError {
	return &ValueError{Msg: fmt.Sprintf(format, args...) + ": " + err.Error(), Err: err}
}

// TypeError reports an entry that is not an exact integer.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// TypeErrorf constructs a TypeError with a formatted message.
func TypeErrorf(format string, args ...interface{}) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}
