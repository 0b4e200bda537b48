package basis

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/latticelab/lattice-lab-go/exact"
)

// HadamardRatio measures how close a basis is to orthogonal:
//
//	(|det B| / (||b_1|| * ... * ||b_n||))^(1/n)
//
// over the basis columns b_i. The ratio is 1 for an orthogonal basis and
// approaches 0 as the basis skews, so good bases score near 1 and sheared bad
// bases score lower. This is a floating-point diagnostic for reporting only;
// nothing correctness-bearing may depend on it. Returns 0 for a singular
// basis and NaN when entries exceed float64 range.
func HadamardRatio(m *exact.Matrix) float64 {
	n := m.Dim()

	detF := new(big.Float).SetInt(m.Det())
	detAbs, _ := new(big.Float).Abs(detF).Float64()
	if detAbs == 0 {
		return 0
	}
	if math.IsInf(detAbs, 0) {
		return math.NaN()
	}

	normProd := 1.0
	col := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		for i, v := range m.Col(j) {
			f, _ := new(big.Float).SetInt(v).Float64()
			col.SetVec(i, f)
		}
		normProd *= mat.Norm(col, 2)
	}
	if math.IsInf(normProd, 0) || math.IsNaN(normProd) {
		return math.NaN()
	}

	return math.Pow(detAbs/normProd, 1.0/float64(n))
}
