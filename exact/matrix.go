// Package exact implements square integer matrices with exact arithmetic:
// multiplication, transpose, determinant, entrywise modular reduction, and
// rational linear-system solving. All results are exact; nothing in this
// package touches floating point.
package exact

import (
	"fmt"
	"math/big"
	"strings"

	latticelab "github.com/latticelab/lattice-lab-go"
)

// Matrix is a square n x n matrix of arbitrary-precision integers, stored
// row-major. Constructors copy their input; accessors return copies. The
// only mutating operation is ShearRow, used by basis generation.
type Matrix struct {
	n int
	e []*big.Int
}

// NewMatrix constructs a matrix from rows of int64 entries.
// The rows must form a square matrix with at least one row.
func NewMatrix(rows [][]int64) (*Matrix, error) {
	n := len(rows)
	if n < 1 {
		return nil, latticelab.ValueErrorf("matrix must have at least one row")
	}
	m := &Matrix{n: n, e: make([]*big.Int, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, latticelab.ShapeErrorf("matrix must be square: row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			m.e[i*n+j] = big.NewInt(v)
		}
	}
	return m, nil
}

// NewMatrixBig constructs a matrix from rows of big.Int entries.
// Entries are copied; nil entries are rejected.
func NewMatrixBig(rows [][]*big.Int) (*Matrix, error) {
	n := len(rows)
	if n < 1 {
		return nil, latticelab.ValueErrorf("matrix must have at least one row")
	}
	m := &Matrix{n: n, e: make([]*big.Int, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, latticelab.ShapeErrorf("matrix must be square: row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v == nil {
				return nil, latticelab.TypeErrorf("matrix entry (%d,%d) is nil", i, j)
			}
			m.e[i*n+j] = new(big.Int).Set(v)
		}
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, latticelab.ValueErrorf("dimension must be a positive integer, got %d", n)
	}
	m := Zero(n)
	for i := 0; i < n; i++ {
		m.e[i*n+i].SetInt64(1)
	}
	return m, nil
}

// Zero returns the n x n zero matrix. n must be positive; callers validate.
func Zero(n int) *Matrix {
	m := &Matrix{n: n, e: make([]*big.Int, n*n)}
	for i := range m.e {
		m.e[i] = new(big.Int)
	}
	return m
}

// Dim returns the matrix dimension n.
func (m *Matrix) Dim() int { return m.n }

// At returns a copy of the entry at row i, column j.
func (m *Matrix) At(i, j int) *big.Int {
	return new(big.Int).Set(m.e[i*m.n+j])
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []*big.Int {
	out := make([]*big.Int, m.n)
	for j := 0; j < m.n; j++ {
		out[j] = new(big.Int).Set(m.e[i*m.n+j])
	}
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []*big.Int {
	out := make([]*big.Int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = new(big.Int).Set(m.e[i*m.n+j])
	}
	return out
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]*big.Int {
	out := make([][]*big.Int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.Row(i)
	}
	return out
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, e: make([]*big.Int, len(m.e))}
	for i, v := range m.e {
		c.e[i] = new(big.Int).Set(v)
	}
	return c
}

// Equal reports whether two matrices have the same dimension and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.n != other.n {
		return false
	}
	for i := range m.e {
		if m.e[i].Cmp(other.e[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns the entrywise sum m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.n != other.n {
		return nil, latticelab.ShapeErrorf("dimension mismatch: %d vs %d", m.n, other.n)
	}
	out := &Matrix{n: m.n, e: make([]*big.Int, len(m.e))}
	for i := range m.e {
		out.e[i] = new(big.Int).Add(m.e[i], other.e[i])
	}
	return out, nil
}

// Mul returns the matrix product m * other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.n != other.n {
		return nil, latticelab.ShapeErrorf("dimension mismatch: %d vs %d", m.n, other.n)
	}
	n := m.n
	out := Zero(n)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := out.e[i*n+j]
			for k := 0; k < n; k++ {
				tmp.Mul(m.e[i*n+k], other.e[k*n+j])
				sum.Add(sum, tmp)
			}
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v []*big.Int) ([]*big.Int, error) {
	if len(v) != m.n {
		return nil, latticelab.ShapeErrorf("vector length %d does not match dimension %d", len(v), m.n)
	}
	n := m.n
	out := make([]*big.Int, n)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		sum := new(big.Int)
		for j := 0; j < n; j++ {
			tmp.Mul(m.e[i*n+j], v[j])
			sum.Add(sum, tmp)
		}
		out[i] = sum
	}
	return out, nil
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	n := m.n
	out := &Matrix{n: n, e: make([]*big.Int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.e[j*n+i] = new(big.Int).Set(m.e[i*n+j])
		}
	}
	return out
}

// Mod returns a new matrix with every entry reduced into [0, modulus) using
// Euclidean reduction, so negative entries map to non-negative remainders.
func (m *Matrix) Mod(modulus *big.Int) (*Matrix, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, latticelab.ValueErrorf("modulus must be a positive integer")
	}
	out := &Matrix{n: m.n, e: make([]*big.Int, len(m.e))}
	for i, v := range m.e {
		out.e[i] = new(big.Int).Mod(v, modulus)
	}
	return out, nil
}

// Det returns the exact determinant, computed with the fraction-free Bareiss
// algorithm. All intermediate values stay integral.
func (m *Matrix) Det() *big.Int {
	n := m.n
	if n == 1 {
		return new(big.Int).Set(m.e[0])
	}

	// Work on a copy; the algorithm destroys its input.
	a := make([]*big.Int, len(m.e))
	for i, v := range m.e {
		a[i] = new(big.Int).Set(v)
	}

	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)
	for k := 0; k < n-1; k++ {
		// Pivot: find a non-zero entry in column k at or below row k.
		if a[k*n+k].Sign() == 0 {
			swapped := false
			for r := k + 1; r < n; r++ {
				if a[r*n+k].Sign() != 0 {
					for c := k; c < n; c++ {
						a[k*n+c], a[r*n+c] = a[r*n+c], a[k*n+c]
					}
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return new(big.Int)
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev
				tmp.Mul(a[i*n+k], a[k*n+j])
				a[i*n+j].Mul(a[i*n+j], a[k*n+k])
				a[i*n+j].Sub(a[i*n+j], tmp)
				a[i*n+j].Quo(a[i*n+j], prev)
			}
		}
		prev.Set(a[k*n+k])
	}

	det := new(big.Int).Set(a[(n-1)*n+(n-1)])
	if sign < 0 {
		det.Neg(det)
	}
	return det
}

// String renders the matrix as one bracketed row per line with aligned columns.
func (m *Matrix) String() string {
	n := m.n
	widths := make([]int, n)
	cells := make([]string, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := m.e[i*n+j].String()
			cells[i*n+j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", widths[j], cells[i*n+j])
		}
		b.WriteByte(']')
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ShearRow adds factor times row src to row dst in place. Shears are
// elementary row operations and never change the determinant. dst and src
// must be distinct valid row indices.
func (m *Matrix) ShearRow(dst, src int, factor *big.Int) error {
	if dst < 0 || dst >= m.n || src < 0 || src >= m.n {
		return latticelab.ValueErrorf("row index out of range")
	}
	if dst == src {
		return latticelab.ValueErrorf("shear rows must be distinct")
	}
	tmp := new(big.Int)
	for j := 0; j < m.n; j++ {
		tmp.Mul(factor, m.e[src*m.n+j])
		m.e[dst*m.n+j].Add(m.e[dst*m.n+j], tmp)
	}
	return nil
}

// ReduceRows reduces every entry into [0, modulus) in place.
func (m *Matrix) ReduceRows(modulus *big.Int) error {
	if modulus == nil || modulus.Sign() <= 0 {
		return latticelab.ValueErrorf("modulus must be a positive integer")
	}
	for _, v := range m.e {
		v.Mod(v, modulus)
	}
	return nil
}
