// Package parallelepiped computes volumes and exact point containment for
// fundamental parallelepipeds, the regions {sum a_i * v_i : 0 <= a_i <= 1}
// spanned by n vectors in n dimensions.
package parallelepiped

import (
	"errors"
	"math/big"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/exact"
	"github.com/latticelab/lattice-lab-go/lattice"
)

// Parallelepiped is spanned by n vectors of length n, stored so vector i is
// column i of the spanning matrix. The lattice passed at construction is used
// for dimension compatibility only; in particular its modulus never applies
// here — volume and containment are modulus-free geometry.
type Parallelepiped struct {
	vectors *exact.Matrix
}

// New constructs a parallelepiped from n spanning vectors compatible with the
// given lattice's dimension.
func New(lat *lattice.Lattice, vectors [][]int64) (*Parallelepiped, error) {
	if lat == nil {
		return nil, latticelab.ValueErrorf("lattice must not be nil")
	}
	n := lat.Dim()
	if len(vectors) != n {
		return nil, latticelab.ShapeErrorf("got %d spanning vectors, want %d", len(vectors), n)
	}
	big_ := make([][]*big.Int, n)
	for i, v := range vectors {
		if len(v) != n {
			return nil, latticelab.ShapeErrorf("vector %d has length %d, want lattice dimension %d", i, len(v), n)
		}
		big_[i] = make([]*big.Int, n)
		for j, c := range v {
			big_[i][j] = big.NewInt(c)
		}
	}
	return fromRows(big_)
}

// NewFromValues constructs a parallelepiped from dynamically typed vectors
// (e.g. decoded JSON); non-numeric entries surface as TypeError.
func NewFromValues(lat *lattice.Lattice, vectors [][]interface{}) (*Parallelepiped, error) {
	if lat == nil {
		return nil, latticelab.ValueErrorf("lattice must not be nil")
	}
	n := lat.Dim()
	if len(vectors) != n {
		return nil, latticelab.ShapeErrorf("got %d spanning vectors, want %d", len(vectors), n)
	}
	parsed := make([][]*big.Int, n)
	for i, v := range vectors {
		if len(v) != n {
			return nil, latticelab.ShapeErrorf("vector %d has length %d, want lattice dimension %d", i, len(v), n)
		}
		row, err := exact.ParseVector(v)
		if err != nil {
			return nil, err
		}
		parsed[i] = row
	}
	return fromRows(parsed)
}

// fromRows stores vector i as column i.
func fromRows(vectors [][]*big.Int) (*Parallelepiped, error) {
	m, err := exact.NewMatrixBig(vectors)
	if err != nil {
		return nil, err
	}
	return &Parallelepiped{vectors: m.Transpose()}, nil
}

// Dim returns the ambient dimension.
func (p *Parallelepiped) Dim() int { return p.vectors.Dim() }

// Vectors returns a copy of the spanning matrix (vector i is column i).
func (p *Parallelepiped) Vectors() *exact.Matrix { return p.vectors.Clone() }

// Volume returns the exact volume |det V| of the parallelepiped. No modulus
// is ever applied. A volume of 0 means the spanning vectors are linearly
// dependent.
func (p *Parallelepiped) Volume() *big.Int {
	det := p.vectors.Det()
	return det.Abs(det)
}

// ContainsPoint reports whether the point lies inside the parallelepiped,
// boundary included.
func (p *Parallelepiped) ContainsPoint(point []int64) (bool, error) {
	b := make([]*big.Int, len(point))
	for i, c := range point {
		b[i] = big.NewInt(c)
	}
	return p.ContainsPointBig(b)
}

// ContainsPointBig solves V * a = point exactly over the rationals and
// reports whether every coordinate of a lies in the closed interval [0, 1].
// Boundary points (a_i exactly 0 or 1) are contained. A point outside the
// span of the vectors is not contained. When the spanning vectors are
// linearly dependent and the point lies in their span, the combination
// vector is not unique and a yes/no answer would depend on an arbitrary
// representative, so the call is rejected with a ShapeError.
func (p *Parallelepiped) ContainsPointBig(point []*big.Int) (bool, error) {
	n := p.vectors.Dim()
	if len(point) != n {
		return false, latticelab.ShapeErrorf("point has length %d, want dimension %d", len(point), n)
	}

	a, err := p.vectors.Solve(point)
	if err != nil {
		if errors.Is(err, exact.ErrNoSolution) {
			return false, nil
		}
		if errors.Is(err, exact.ErrUnderdetermined) {
			return false, latticelab.ShapeErrorf("spanning vectors are linearly dependent: containment is ambiguous")
		}
		return false, err
	}

	for _, ai := range a {
		if ai.Sign() < 0 || ai.Cmp(ratOne) > 0 {
			return false, nil
		}
	}
	return true, nil
}

var ratOne = big.NewRat(1, 1)
