// Package core provides parameter sets and validation for lattice-lab.
package core

import (
	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/utils"
)

// Params configures a key-generation system: the lattice dimension and an
// optional modulus (0 means no modulus).
type Params struct {
	Dimension int   `json:"dimension"`
	Modulus   int64 `json:"modulus"`
}

// Demo2D is the classic walkthrough configuration: a 2-dimensional lattice
// with a small prime modulus.
var Demo2D = Params{
	Dimension: 2,
	Modulus:   101,
}

// Demo3D is a slightly larger demo configuration.
var Demo3D = Params{
	Dimension: 3,
	Modulus:   97,
}

// Validate checks the parameter set for consistency.
func Validate(params Params) error {
	if err := utils.CheckDimension(params.Dimension); err != nil {
		return latticelab.WrapValueError(err, "dimension %d", params.Dimension)
	}
	if params.Modulus < 0 {
		return latticelab.ValueErrorf("modulus must be a positive integer or 0 for none, got %d", params.Modulus)
	}
	return nil
}

// NoiseBound returns the half-width of the noise interval used in key
// generation: noise entries are drawn from [-NoiseBound, NoiseBound].
func NoiseBound(dimension int) int64 {
	return 5 * int64(dimension)
}
