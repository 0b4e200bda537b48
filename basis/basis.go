// Package basis generates good and bad bases for integer lattices.
//
// A good basis is the identity. A bad basis is produced by random row shears
// of the identity: each shear adds an integer multiple of one row to a
// different row, an elementary operation that never changes the determinant,
// so the result is unimodular (determinant +1 or -1) by construction and
// spans the same lattice. A separate random-column generator is provided for
// callers that want noise-like bases without the unimodularity guarantee.
package basis

import (
	"math/big"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/exact"
	"github.com/latticelab/lattice-lab-go/utils"
)

// DomainShear separates the seeded shear stream from other seed consumers.
const DomainShear = "lattice-lab-basis-shear-v1"

// DefaultShearRange is the default range for shear factors.
var DefaultShearRange = latticelab.Range{Lo: 1, Hi: 10}

// Good returns the identity basis for the given dimension.
func Good(dimension int) (*exact.Matrix, error) {
	if err := utils.CheckDimension(dimension); err != nil {
		return nil, latticelab.WrapValueError(err, "dimension %d", dimension)
	}
	return exact.Identity(dimension)
}

// Bad returns a unimodular bad basis: the identity skewed by 2*dimension
// random row shears with factors drawn uniformly from shearRange (inclusive).
// The determinant is +1 or -1 by construction. Dimension 1 has no distinct
// row pair to shear, so the identity is returned as-is.
func Bad(dimension int, shearRange latticelab.Range) (*exact.Matrix, error) {
	return bad(dimension, shearRange, nil)
}

// BadFromSeed is Bad with shears drawn from a deterministic SHAKE256 stream,
// so the same seed always yields the same basis.
func BadFromSeed(dimension int, shearRange latticelab.Range, seed []byte) (*exact.Matrix, error) {
	if err := utils.CheckDimension(dimension); err != nil {
		return nil, latticelab.WrapValueError(err, "dimension %d", dimension)
	}
	if err := shearRange.Validate(); err != nil {
		return nil, err
	}
	stream, err := utils.NewSeedStreamWithDomain(seed, DomainShear)
	if err != nil {
		return nil, latticelab.WrapValueError(err, "seed")
	}
	return shear(dimension, shearRange, stream.IndexPair, stream.Int64Range)
}

// BadModular produces a bad basis with entries reduced into [0, modulus).
// Reduction can break unimodularity, so generation retries fresh shear runs
// until the reduced matrix has determinant +1 or -1, up to
// utils.MaxShearAttempts. The modulus must be at least 2: modulo 1 every
// matrix collapses to zero and no unimodular residue exists.
func BadModular(dimension int, shearRange latticelab.Range, modulus int64) (*exact.Matrix, error) {
	if modulus < 2 {
		return nil, latticelab.ValueErrorf("modulus must be at least 2, got %d", modulus)
	}
	m := big.NewInt(modulus)
	for attempt := 0; attempt < utils.MaxShearAttempts; attempt++ {
		b, err := bad(dimension, shearRange, m)
		if err != nil {
			return nil, err
		}
		det := b.Det()
		if det.CmpAbs(bigOne) == 0 {
			return b, nil
		}
	}
	return nil, latticelab.ValueErrorf("no unimodular basis found modulo %d after %d attempts", modulus, utils.MaxShearAttempts)
}

// Random returns a basis whose entries are drawn uniformly from entryRange,
// optionally reduced modulo modulus (0 means none). The result is NOT
// guaranteed to be unimodular; use Bad when the determinant invariant
// matters.
func Random(dimension int, entryRange latticelab.Range, modulus int64) (*exact.Matrix, error) {
	if err := utils.CheckDimension(dimension); err != nil {
		return nil, latticelab.WrapValueError(err, "dimension %d", dimension)
	}
	if err := entryRange.Validate(); err != nil {
		return nil, err
	}
	if modulus < 0 {
		return nil, latticelab.ValueErrorf("modulus must be a positive integer, got %d", modulus)
	}

	rows := make([][]*big.Int, dimension)
	for i := range rows {
		rows[i] = make([]*big.Int, dimension)
		for j := range rows[i] {
			v, err := utils.RandomInt64Range(entryRange.Lo, entryRange.Hi)
			if err != nil {
				return nil, err
			}
			rows[i][j] = big.NewInt(v)
		}
	}
	m, err := exact.NewMatrixBig(rows)
	if err != nil {
		return nil, err
	}
	if modulus > 0 {
		return m.Mod(big.NewInt(modulus))
	}
	return m, nil
}

func bad(dimension int, shearRange latticelab.Range, modulus *big.Int) (*exact.Matrix, error) {
	if err := utils.CheckDimension(dimension); err != nil {
		return nil, latticelab.WrapValueError(err, "dimension %d", dimension)
	}
	if err := shearRange.Validate(); err != nil {
		return nil, err
	}
	m, err := shear(dimension, shearRange, utils.RandomIndexPair, utils.RandomInt64Range)
	if err != nil {
		return nil, err
	}
	if modulus != nil {
		if err := m.ReduceRows(modulus); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func shear(
	dimension int,
	shearRange latticelab.Range,
	indexPair func(int) (int, int, error),
	intRange func(int64, int64) (int64, error),
) (*exact.Matrix, error) {
	m, err := exact.Identity(dimension)
	if err != nil {
		return nil, err
	}
	if dimension == 1 {
		return m, nil
	}

	factor := new(big.Int)
	for s := 0; s < 2*dimension; s++ {
		i, j, err := indexPair(dimension)
		if err != nil {
			return nil, err
		}
		f, err := intRange(shearRange.Lo, shearRange.Hi)
		if err != nil {
			return nil, err
		}
		factor.SetInt64(f)
		if err := m.ShearRow(i, j, factor); err != nil {
			return nil, err
		}
	}
	return m, nil
}

var bigOne = big.NewInt(1)
