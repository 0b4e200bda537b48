// Package utils provides randomness, hashing, and safe-arithmetic helpers
// for lattice-lab.
package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"runtime"
)

// RandReader is the entropy source for all non-deterministic generation.
// It defaults to crypto/rand and may be swapped for a deterministic reader
// in tests.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n random bytes from RandReader.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := io.ReadFull(RandReader, buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomInt generates a random integer in [0, max).
// It uses rejection sampling to ensure a uniform distribution.
func RandomInt(max int64) (int64, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}
	if max == 1 {
		return 0, nil
	}

	// Calculate number of bytes needed
	bitsNeeded := 0
	for m := max - 1; m > 0; m >>= 1 {
		bitsNeeded++
	}
	bytesNeeded := (bitsNeeded + 7) / 8
	mask := int64(1)<<uint(bitsNeeded) - 1

	for {
		bytes, err := SecureRandomBytes(bytesNeeded)
		if err != nil {
			return 0, err
		}

		var value int64
		for i := 0; i < bytesNeeded; i++ {
			value = (value << 8) | int64(bytes[i])
		}
		value &= mask

		if value < max {
			return value, nil
		}
	}
}

// RandomInt64Range generates a random integer in the closed interval [lo, hi].
func RandomInt64Range(lo, hi int64) (int64, error) {
	if lo > hi {
		return 0, errors.New("lo must not exceed hi")
	}
	v, err := RandomInt(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + v, nil
}

// RandomIndexPair generates two distinct indices in [0, n).
// n must be at least 2.
func RandomIndexPair(n int) (int, int, error) {
	if n < 2 {
		return 0, 0, errors.New("need at least two indices")
	}
	i, err := RandomInt(int64(n))
	if err != nil {
		return 0, 0, err
	}
	j, err := RandomInt(int64(n - 1))
	if err != nil {
		return 0, 0, err
	}
	if j >= i {
		j++
	}
	return int(i), int(j), nil
}

// ValidateSeedEntropy checks if a seed has sufficient entropy.
// It performs basic statistical tests to reject obviously weak seeds
// (e.g., all zeros, sequential). This is a sanity check, not a rigorous
// randomness test.
func ValidateSeedEntropy(seed []byte) error {
	if len(seed) < 32 {
		return errors.New("seed must be at least 32 bytes")
	}

	// Check for all bytes identical
	first := seed[0]
	allSame := true
	for i := 1; i < len(seed); i++ {
		if seed[i] != first {
			allSame = false
			break
		}
	}
	if allSame {
		return errors.New("seed has low entropy: all bytes are identical")
	}

	// Check for sequential patterns
	isAscending := true
	isDescending := true
	for i := 1; i < len(seed); i++ {
		if seed[i] != byte((int(seed[i-1])+1)%256) {
			isAscending = false
		}
		if seed[i] != byte((int(seed[i-1])-1+256)%256) {
			isDescending = false
		}
		if !isAscending && !isDescending {
			break
		}
	}
	if isAscending || isDescending {
		return errors.New("seed has low entropy: sequential pattern detected")
	}

	// Check for low byte diversity
	unique := make(map[byte]struct{})
	for _, b := range seed {
		unique[b] = struct{}{}
		if len(unique) >= 8 {
			break
		}
	}
	if len(unique) < 8 {
		return errors.New("seed has low entropy: insufficient byte diversity")
	}

	return nil
}

// Zeroize overwrites a byte slice with zeros.
// This is used to clear seed material from memory after use.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating
// the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
