// This file contains safe arithmetic and limit helpers to prevent integer
// overflow and denial-of-service via oversized dimensions or enumerations.

package utils

import (
	"errors"
	"math"
)

// Limits on problem sizes. The library targets small teaching examples; these
// bounds stop a hostile dimension or range from exhausting memory.
const (
	// MaxDimension is the maximum allowed basis dimension.
	MaxDimension = 1 << 10 // 1024

	// MaxEnumeratedPoints is the maximum number of lattice points a single
	// enumeration may produce.
	MaxEnumeratedPoints = 1 << 22 // ~4M points

	// MaxShearAttempts bounds the retry loop in modular bad-basis generation.
	MaxShearAttempts = 1000
)

var (
	// ErrOverflow indicates an integer overflow occurred.
	ErrOverflow = errors.New("integer overflow")

	// ErrExceedsLimit indicates a value exceeds the allowed limit.
	ErrExceedsLimit = errors.New("value exceeds allowed limit")

	// ErrInvalidLength indicates an invalid length value.
	ErrInvalidLength = errors.New("invalid length")
)

// SafeMultiply multiplies two non-negative integers and returns an error if
// overflow occurs.
func SafeMultiply(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidLength
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	// Check for overflow before multiplying
	if a > math.MaxInt64/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// CheckLength validates that length is within [0, maxAllowed].
func CheckLength(length, maxAllowed int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if length > maxAllowed {
		return ErrExceedsLimit
	}
	return nil
}

// CheckPositive validates that value is > 0.
func CheckPositive(value int, name string) error {
	if value <= 0 {
		return errors.New(name + " must be positive")
	}
	return nil
}

// CheckDimension validates that a basis dimension is positive and within
// MaxDimension.
func CheckDimension(dimension int) error {
	if dimension <= 0 {
		return errors.New("dimension must be positive")
	}
	if dimension > MaxDimension {
		return ErrExceedsLimit
	}
	return nil
}
