package exact

import (
	"errors"
	"math/big"

	latticelab "github.com/latticelab/lattice-lab-go"
)

var (
	// ErrNoSolution indicates the linear system is inconsistent.
	ErrNoSolution = errors.New("linear system has no solution")

	// ErrUnderdetermined indicates the system is consistent but has free
	// parameters, so no single solution can be reported.
	ErrUnderdetermined = errors.New("linear system is underdetermined")
)

// Solve solves m * x = b exactly over the rationals using Gauss-Jordan
// elimination with big.Rat arithmetic. It returns ErrNoSolution for an
// inconsistent system and ErrUnderdetermined when the coefficient matrix is
// singular but the system is consistent. Floating point is never involved,
// so boundary values like exact 0 and 1 survive.
func (m *Matrix) Solve(b []*big.Int) ([]*big.Rat, error) {
	n := m.n
	if len(b) != n {
		return nil, latticelab.ShapeErrorf("right-hand side length %d does not match dimension %d", len(b), n)
	}

	// Augmented system over Q.
	aug := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).SetInt(m.e[i*n+j])
		}
		aug[i][n] = new(big.Rat).SetInt(b[i])
	}

	pivotCols := make([]int, 0, n)
	row := 0
	tmp := new(big.Rat)
	for col := 0; col < n && row < n; col++ {
		pivot := -1
		for r := row; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		aug[row], aug[pivot] = aug[pivot], aug[row]

		// Normalize the pivot row.
		inv := new(big.Rat).Inv(aug[row][col])
		for c := col; c <= n; c++ {
			aug[row][c].Mul(aug[row][c], inv)
		}

		// Eliminate the column everywhere else.
		for r := 0; r < n; r++ {
			if r == row || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			for c := col; c <= n; c++ {
				tmp.Mul(factor, aug[row][c])
				aug[r][c].Sub(aug[r][c], tmp)
			}
		}

		pivotCols = append(pivotCols, col)
		row++
	}

	// Any zero row with a non-zero right-hand side makes the system
	// inconsistent.
	for r := row; r < n; r++ {
		if aug[r][n].Sign() != 0 {
			return nil, ErrNoSolution
		}
	}
	if len(pivotCols) < n {
		return nil, ErrUnderdetermined
	}

	x := make([]*big.Rat, n)
	for k, col := range pivotCols {
		x[col] = new(big.Rat).Set(aug[k][n])
	}
	return x, nil
}
