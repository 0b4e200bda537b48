package lattice

import (
	"errors"
	"math/big"
	"testing"

	latticelab "github.com/latticelab/lattice-lab-go"
)

func r(lo, hi int64) latticelab.Range { return latticelab.Range{Lo: lo, Hi: hi} }

func pointSet(points []Point) map[string]int {
	set := make(map[string]int, len(points))
	for _, p := range points {
		set[p.Key()]++
	}
	return set
}

func TestGeneratePoints2DIdentity(t *testing.T) {
	lat, err := New([][]int64{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	points, err := lat.GeneratePoints(r(-1, 1), r(-1, 1))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	if len(points) != 9 {
		t.Fatalf("got %d points, want 9", len(points))
	}

	set := pointSet(points)
	for _, x := range []int64{-1, 0, 1} {
		for _, y := range []int64{-1, 0, 1} {
			key := Point{big.NewInt(x), big.NewInt(y)}.Key()
			if set[key] != 1 {
				t.Errorf("point %s appears %d times, want 1", key, set[key])
			}
		}
	}
}

func TestGeneratePointsNegativeRanges(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})
	points, err := lat.GeneratePoints(r(-2, -1), r(-2, -1))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	set := pointSet(points)
	want := []string{"(-2,-2)", "(-2,-1)", "(-1,-2)", "(-1,-1)"}
	if len(set) != len(want) {
		t.Fatalf("got %d distinct points, want %d", len(set), len(want))
	}
	for _, key := range want {
		if set[key] != 1 {
			t.Errorf("missing point %s", key)
		}
	}
}

func TestGeneratePoints3DIdentity(t *testing.T) {
	lat, _ := New([][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	points, err := lat.GeneratePoints(r(-1, 1), r(-1, 1), r(-1, 1))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	if len(points) != 27 {
		t.Fatalf("got %d points, want 27", len(points))
	}
	set := pointSet(points)
	if len(set) != 27 {
		t.Errorf("got %d distinct points, want 27", len(set))
	}
	if set["(1,-1,0)"] != 1 || set["(-1,-1,-1)"] != 1 {
		t.Error("expected corner and interior points missing")
	}
}

func TestGeneratePointsNonTrivialBasis(t *testing.T) {
	// Basis columns (1,3) and (2,4): combination (1,1) maps to (3,7).
	lat, _ := New([][]int64{{1, 2}, {3, 4}})
	points, err := lat.GeneratePoints(r(1, 1), r(1, 1))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	if len(points) != 1 || points[0].Key() != "(3,7)" {
		t.Errorf("got %v, want [(3,7)]", points)
	}
}

func TestGeneratePointsModulusOne(t *testing.T) {
	// Modulus 1 collapses every coordinate to 0 and is valid, not an error.
	for _, rows := range [][][]int64{
		{{2, 1}, {1, 2}},
		{{1, 2}, {3, 4}},
	} {
		lat, err := NewModular(rows, 1)
		if err != nil {
			t.Fatalf("NewModular failed: %v", err)
		}
		points, err := lat.GeneratePoints(r(-1, 1), r(-1, 1))
		if err != nil {
			t.Fatalf("GeneratePoints failed: %v", err)
		}
		if len(points) != 9 {
			t.Fatalf("got %d points, want 9", len(points))
		}
		for _, p := range points {
			if p.Key() != "(0,0)" {
				t.Errorf("modulus 1 produced %s, want (0,0)", p)
			}
		}
	}
}

func TestGeneratePointsModularReduction(t *testing.T) {
	// Coordinates must use Euclidean reduction: negative inputs still land
	// in [0, modulus).
	lat, _ := NewModular([][]int64{{1, 0}, {0, 1}}, 5)
	points, err := lat.GeneratePoints(r(-2, -1), r(-2, -1))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	set := pointSet(points)
	for _, key := range []string{"(3,3)", "(3,4)", "(4,3)", "(4,4)"} {
		if set[key] != 1 {
			t.Errorf("missing reduced point %s; got %v", key, set)
		}
	}
}

func TestGeneratePointsPreservesDuplicates(t *testing.T) {
	lat, _ := NewModular([][]int64{{1, 0}, {0, 1}}, 2)
	points, err := lat.GeneratePoints(r(0, 3), r(0, 0))
	if err != nil {
		t.Fatalf("GeneratePoints failed: %v", err)
	}
	// Four combination vectors reduce onto two residues; all four entries
	// must be preserved.
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	set := pointSet(points)
	if set["(0,0)"] != 2 || set["(1,0)"] != 2 {
		t.Errorf("duplicate reduction collapsed: %v", set)
	}
}

func TestGeneratePointsValidation(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})

	var se *latticelab.ShapeError
	_, err := lat.GeneratePoints(r(0, 1))
	if !errors.As(err, &se) {
		t.Errorf("range count mismatch: got %v, want ShapeError", err)
	}
	_, err = lat.GeneratePoints(r(0, 1), r(0, 1), r(0, 1))
	if !errors.As(err, &se) {
		t.Errorf("range count mismatch: got %v, want ShapeError", err)
	}

	var ve *latticelab.ValueError
	_, err = lat.GeneratePoints(r(1, 0), r(0, 1))
	if !errors.As(err, &ve) {
		t.Errorf("inverted range: got %v, want ValueError", err)
	}
}

func TestGeneratePointsEnumerationLimit(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})
	var ve *latticelab.ValueError
	_, err := lat.GeneratePoints(r(0, 1<<20), r(0, 1<<20))
	if !errors.As(err, &ve) {
		t.Errorf("oversized enumeration: got %v, want ValueError", err)
	}
}

func TestDeterminant(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})
	if lat.Determinant().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("identity determinant = %s, want 1", lat.Determinant())
	}

	lat, _ = New([][]int64{{2, 0}, {0, 2}})
	if lat.Determinant().Cmp(big.NewInt(4)) != 0 {
		t.Errorf("determinant = %s, want 4", lat.Determinant())
	}
}

func TestDeterminantModular(t *testing.T) {
	// det([[1,2],[3,4]]) = -2; true modulo puts it in [0, m), so -2 mod 5 = 3.
	lat, err := NewModular([][]int64{{1, 2}, {3, 4}}, 5)
	if err != nil {
		t.Fatalf("NewModular failed: %v", err)
	}
	if got := lat.Determinant(); got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Determinant = %s, want 3", got)
	}

	lat, _ = NewModular([][]int64{{1, 2}, {3, 4}}, 1)
	if got := lat.Determinant(); got.Sign() != 0 {
		t.Errorf("Determinant mod 1 = %s, want 0", got)
	}
}

func TestConstructionValidation(t *testing.T) {
	var se *latticelab.ShapeError
	_, err := New([][]int64{{1, 0}})
	if !errors.As(err, &se) {
		t.Errorf("non-square: got %v, want ShapeError", err)
	}

	var ve *latticelab.ValueError
	for _, modulus := range []int64{0, -1} {
		_, err = NewModular([][]int64{{1, 2}, {3, 4}}, modulus)
		if !errors.As(err, &ve) {
			t.Errorf("modulus %d: got %v, want ValueError", modulus, err)
		}
	}
}

func TestNewFromValuesTypeErrors(t *testing.T) {
	var te *latticelab.TypeError
	cases := map[string][][]interface{}{
		"string entry":     {{1.0, "a"}, {0.0, 1.0}},
		"null entry":       {{1.0, nil}, {0.0, 1.0}},
		"nested entry":     {{1.0, []interface{}{1.0}}, {0.0, 1.0}},
		"fractional entry": {{1.0, 0.5}, {0.0, 1.0}},
		"complex entry":    {{1.0, complex(0, 1)}, {0.0, 1.0}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewFromValues(rows, 0)
			if !errors.As(err, &te) {
				t.Errorf("got %v, want TypeError", err)
			}
		})
	}
}

func TestNewFromValuesIntegralFloats(t *testing.T) {
	// JSON-decoded integral floats are accepted as exact integers.
	lat, err := NewFromValues([][]interface{}{{1.0, 0.0}, {0.0, 1.0}}, 0)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	if lat.Determinant().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("determinant = %s, want 1", lat.Determinant())
	}
}

func TestBasisIsCopied(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})
	b := lat.Basis()
	if err := b.ShearRow(0, 1, big.NewInt(5)); err != nil {
		t.Fatalf("ShearRow failed: %v", err)
	}
	if lat.Basis().At(0, 1).Sign() != 0 {
		t.Error("mutating the returned basis leaked into the lattice")
	}
}

func TestModulusAccessor(t *testing.T) {
	lat, _ := New([][]int64{{1, 0}, {0, 1}})
	if lat.Modulus() != nil {
		t.Error("modulus should be nil when unset")
	}

	lat, _ = NewModular([][]int64{{1, 0}, {0, 1}}, 7)
	m := lat.Modulus()
	if m.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("modulus = %s, want 7", m)
	}
	m.SetInt64(99)
	if lat.Modulus().Cmp(big.NewInt(7)) != 0 {
		t.Error("mutating the returned modulus leaked into the lattice")
	}
}
