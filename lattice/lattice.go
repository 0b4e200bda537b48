// Package lattice represents integer lattices by a basis matrix and
// enumerates their points over bounded ranges of combination vectors.
package lattice

import (
	"math/big"
	"strings"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/exact"
	"github.com/latticelab/lattice-lab-go/utils"
)

// Point is one lattice point, an n-tuple of exact integers.
type Point []*big.Int

// Key returns a canonical string form of the point, usable as a map key when
// callers need set semantics over enumerated points.
func (p Point) Key() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// String returns the same canonical form as Key.
func (p Point) String() string { return p.Key() }

// Lattice is the set of integer combinations of a basis matrix's columns,
// optionally reduced modulo a positive integer. The basis is owned by the
// Lattice and immutable after construction.
type Lattice struct {
	basis   *exact.Matrix
	modulus *big.Int // nil when no modulus is configured
}

// New constructs a lattice from integer basis rows with no modulus.
func New(rows [][]int64) (*Lattice, error) {
	m, err := exact.NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	return FromMatrix(m, 0)
}

// NewModular constructs a lattice whose reported coordinates and determinant
// are reduced into [0, modulus). The modulus must be a positive integer;
// modulus 1 is valid and collapses every coordinate to zero.
func NewModular(rows [][]int64, modulus int64) (*Lattice, error) {
	if modulus < 1 {
		return nil, latticelab.ValueErrorf("modulus must be a positive integer, got %d", modulus)
	}
	m, err := exact.NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	return FromMatrix(m, modulus)
}

// NewFromValues constructs a lattice from dynamically typed rows (e.g.
// decoded JSON). Non-integer entries surface as TypeError. A modulus of 0
// means no modulus.
func NewFromValues(rows [][]interface{}, modulus int64) (*Lattice, error) {
	m, err := exact.ParseMatrix(rows)
	if err != nil {
		return nil, err
	}
	return FromMatrix(m, modulus)
}

// FromMatrix wraps an existing exact matrix as a lattice basis. The matrix is
// cloned. A modulus of 0 means no modulus; negative moduli are invalid.
func FromMatrix(basis *exact.Matrix, modulus int64) (*Lattice, error) {
	if err := utils.CheckDimension(basis.Dim()); err != nil {
		return nil, latticelab.WrapValueError(err, "basis dimension %d", basis.Dim())
	}
	l := &Lattice{basis: basis.Clone()}
	if modulus != 0 {
		if modulus < 1 {
			return nil, latticelab.ValueErrorf("modulus must be a positive integer, got %d", modulus)
		}
		l.modulus = big.NewInt(modulus)
	}
	return l, nil
}

// Dim returns the basis dimension.
func (l *Lattice) Dim() int { return l.basis.Dim() }

// Modulus returns a copy of the configured modulus, or nil when none is set.
func (l *Lattice) Modulus() *big.Int {
	if l.modulus == nil {
		return nil
	}
	return new(big.Int).Set(l.modulus)
}

// Basis returns a copy of the basis matrix.
func (l *Lattice) Basis() *exact.Matrix { return l.basis.Clone() }

// GeneratePoints enumerates lattice points for every integer combination
// vector inside the given closed ranges, one range per dimension. Each
// combination vector is mapped through the basis; with a modulus configured,
// every coordinate is reduced into [0, modulus) with Euclidean reduction.
// Duplicates after reduction are preserved as separate entries; enumeration
// order follows the ranges odometer-style and carries no meaning.
func (l *Lattice) GeneratePoints(ranges ...latticelab.Range) ([]Point, error) {
	n := l.basis.Dim()
	if len(ranges) != n {
		return nil, latticelab.ShapeErrorf("number of ranges (%d) must match the basis dimension (%d)", len(ranges), n)
	}

	total := int64(1)
	for _, r := range ranges {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		var err error
		total, err = utils.SafeMultiply(total, r.Width())
		if err != nil || total > utils.MaxEnumeratedPoints {
			return nil, latticelab.WrapValueError(utils.ErrExceedsLimit, "enumeration of %v ranges", len(ranges))
		}
	}

	combo := make([]*big.Int, n)
	for i, r := range ranges {
		combo[i] = big.NewInt(r.Lo)
	}

	points := make([]Point, 0, total)
	for k := int64(0); k < total; k++ {
		coords, err := l.basis.MulVec(combo)
		if err != nil {
			return nil, err
		}
		if l.modulus != nil {
			for _, c := range coords {
				c.Mod(c, l.modulus)
			}
		}
		points = append(points, Point(coords))

		// Advance the combination vector odometer-style.
		for i := n - 1; i >= 0; i-- {
			if combo[i].Int64() < ranges[i].Hi {
				combo[i].Add(combo[i], bigOne)
				break
			}
			combo[i].SetInt64(ranges[i].Lo)
		}
	}
	return points, nil
}

// Determinant returns the exact determinant of the basis matrix, reduced into
// [0, modulus) when a modulus is configured.
func (l *Lattice) Determinant() *big.Int {
	det := l.basis.Det()
	if l.modulus != nil {
		det.Mod(det, l.modulus)
	}
	return det
}

var bigOne = big.NewInt(1)
