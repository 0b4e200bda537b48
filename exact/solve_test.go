package exact

import (
	"errors"
	"math/big"
	"testing"

	latticelab "github.com/latticelab/lattice-lab-go"
)

func bigVec(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestSolveUnique(t *testing.T) {
	m := mustMatrix(t, [][]int64{{2, 0}, {0, 2}})
	x, err := m.Solve(bigVec(1, 1))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	half := big.NewRat(1, 2)
	if x[0].Cmp(half) != 0 || x[1].Cmp(half) != 0 {
		t.Errorf("Solve = (%s, %s), want (1/2, 1/2)", x[0], x[1])
	}
}

func TestSolveExactBoundary(t *testing.T) {
	// The solution lands exactly on 1; a floating-point solver could report
	// 0.9999... and a caller comparing against 1 would misclassify it.
	m := mustMatrix(t, [][]int64{{3, 1}, {1, 3}})
	x, err := m.Solve(bigVec(4, 4))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	one := big.NewRat(1, 1)
	if x[0].Cmp(one) != 0 || x[1].Cmp(one) != 0 {
		t.Errorf("Solve = (%s, %s), want (1, 1)", x[0], x[1])
	}
}

func TestSolveZeroPivot(t *testing.T) {
	m := mustMatrix(t, [][]int64{{0, 1}, {1, 0}})
	x, err := m.Solve(bigVec(5, 7))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if x[0].Cmp(big.NewRat(7, 1)) != 0 || x[1].Cmp(big.NewRat(5, 1)) != 0 {
		t.Errorf("Solve = (%s, %s), want (7, 5)", x[0], x[1])
	}
}

func TestSolveNoSolution(t *testing.T) {
	m := mustMatrix(t, [][]int64{{1, 1}, {1, 1}})
	_, err := m.Solve(bigVec(1, 0))
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("got %v, want ErrNoSolution", err)
	}
}

func TestSolveUnderdetermined(t *testing.T) {
	m := mustMatrix(t, [][]int64{{1, 1}, {1, 1}})
	_, err := m.Solve(bigVec(1, 1))
	if !errors.Is(err, ErrUnderdetermined) {
		t.Errorf("got %v, want ErrUnderdetermined", err)
	}

	zero := Zero(2)
	_, err = zero.Solve(bigVec(0, 0))
	if !errors.Is(err, ErrUnderdetermined) {
		t.Errorf("zero matrix, zero rhs: got %v, want ErrUnderdetermined", err)
	}
	_, err = zero.Solve(bigVec(1, 0))
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("zero matrix, non-zero rhs: got %v, want ErrNoSolution", err)
	}
}

func TestSolveShapeError(t *testing.T) {
	m := mustMatrix(t, [][]int64{{1, 0}, {0, 1}})
	var se *latticelab.ShapeError
	_, err := m.Solve(bigVec(1))
	if !errors.As(err, &se) {
		t.Errorf("got %v, want ShapeError", err)
	}
}

func TestSolveLargeRationals(t *testing.T) {
	// 3x3 with a messy but unique rational solution, verified by plugging back in.
	m := mustMatrix(t, [][]int64{{3, 7, 2}, {1, -4, 5}, {6, 2, -9}})
	b := bigVec(11, -3, 8)
	x, err := m.Solve(b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		sum := new(big.Rat)
		term := new(big.Rat)
		for j := 0; j < 3; j++ {
			term.SetInt(m.At(i, j))
			term.Mul(term, x[j])
			sum.Add(sum, term)
		}
		if sum.Cmp(new(big.Rat).SetInt(b[i])) != 0 {
			t.Errorf("row %d: m*x = %s, want %s", i, sum, b[i])
		}
	}
}
