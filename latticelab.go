// Package latticelab models integer lattices and the exact-arithmetic geometry
// needed by a toy lattice-based key-generation scheme: integer bases, point
// enumeration, determinants, good/bad basis generation, fundamental-parallelepiped
// containment, and public/private key pairs derived by perturbing a good basis
// with bounded noise.
//
// WARNING: This is a teaching construction, NOT a cryptographically secure
// scheme. There is no encryption, no trapdoor sampling, and no hardness
// argument. DO NOT use it to protect anything.
package latticelab

// Version of the lattice-lab Go implementation.
const Version = "1.0.0"

// API summary:
//
// Geometry:
//   - exact.NewMatrix(rows) - exact integer matrix (mul, transpose, det, mod, solve)
//   - lattice.New(rows) / lattice.NewModular(rows, m) - lattice from a basis
//   - lattice.GeneratePoints(ranges...) - enumerate lattice points
//   - parallelepiped.New(lat, vectors) - volume and exact point containment
//
// Bases:
//   - basis.Good(dim) - identity (good) basis
//   - basis.Bad(dim, shearRange) - unimodular sheared (bad) basis, det = ±1
//   - basis.HadamardRatio(m) - orthogonality diagnostic
//
// Key generation:
//   - keygen.New(dim, modulus) - toy key-generation system
//   - keygen.System.GenerateKeys() - (public, private) basis pair
//   - keygen.Analyze(kp) - noise distribution profile
//
// Parameters:
//   - core.Demo2D, core.Demo3D - named demo parameter sets
