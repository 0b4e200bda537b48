// Package keygen derives toy public/private basis pairs: the private basis is
// the identity (a good basis), the public basis is the private basis
// perturbed by bounded uniform noise, reduced modulo the configured modulus.
package keygen

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/blake3"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/basis"
	"github.com/latticelab/lattice-lab-go/core"
	"github.com/latticelab/lattice-lab-go/exact"
	"github.com/latticelab/lattice-lab-go/utils"
)

// DomainNoise separates seeded noise sampling from other seed consumers.
const DomainNoise = "lattice-lab-keygen-noise-v1"

// fingerprintDomain prefixes the public-basis hash.
const fingerprintDomain = "lattice-lab-fingerprint-v1"

// FingerprintSize is the byte length of a key-pair fingerprint.
const FingerprintSize = 32

// KeyPair is a generated key pair. Private is the identity basis, never
// reduced; Public is Private plus noise, reduced when a modulus is
// configured. Fingerprint identifies the public basis.
type KeyPair struct {
	Public      *exact.Matrix
	Private     *exact.Matrix
	Fingerprint [FingerprintSize]byte
}

// System generates key pairs for a fixed dimension and optional modulus.
type System struct {
	params  core.Params
	modulus *big.Int // nil when no modulus is configured
}

// New constructs a key-generation system. A modulus of 0 means no modulus.
func New(dimension int, modulus int64) (*System, error) {
	return FromParams(core.Params{Dimension: dimension, Modulus: modulus})
}

// FromParams constructs a key-generation system from a parameter set.
func FromParams(params core.Params) (*System, error) {
	if err := core.Validate(params); err != nil {
		return nil, err
	}
	s := &System{params: params}
	if params.Modulus > 0 {
		s.modulus = big.NewInt(params.Modulus)
	}
	return s, nil
}

// Params returns the system's parameter set.
func (s *System) Params() core.Params { return s.params }

// GenerateKeys generates a key pair with noise drawn from utils.RandReader.
// The private basis is the identity; the public basis adds entrywise noise
// uniform in [-5*dimension, 5*dimension], reduced into [0, modulus) when a
// modulus is configured.
func (s *System) GenerateKeys() (*KeyPair, error) {
	return s.generate(func(lo, hi int64) (int64, error) {
		return utils.RandomInt64Range(lo, hi)
	})
}

// GenerateKeysFromSeed generates a deterministic key pair: the same seed
// always yields the same public basis. The seed must pass the entropy sanity
// check and is zeroized before returning.
func (s *System) GenerateKeysFromSeed(seed []byte) (*KeyPair, error) {
	stream, err := utils.NewSeedStreamWithDomain(seed, DomainNoise)
	utils.Zeroize(seed)
	if err != nil {
		return nil, latticelab.WrapValueError(err, "seed")
	}
	return s.generate(stream.Int64Range)
}

func (s *System) generate(intRange func(lo, hi int64) (int64, error)) (*KeyPair, error) {
	private, err := basis.Good(s.params.Dimension)
	if err != nil {
		return nil, err
	}

	noise, err := s.sampleNoise(intRange)
	if err != nil {
		return nil, err
	}

	public, err := private.Add(noise)
	if err != nil {
		return nil, err
	}
	if s.modulus != nil {
		public, err = public.Mod(s.modulus)
		if err != nil {
			return nil, err
		}
	}

	kp := &KeyPair{Public: public, Private: private}
	kp.Fingerprint = Fingerprint(public)
	return kp, nil
}

// sampleNoise draws an n x n matrix with entries uniform in
// [-NoiseBound(n), NoiseBound(n)]. The noise itself is never reduced here;
// reduction happens on the public basis so the private identity stays exact.
func (s *System) sampleNoise(intRange func(lo, hi int64) (int64, error)) (*exact.Matrix, error) {
	n := s.params.Dimension
	bound := core.NoiseBound(n)
	rows := make([][]*big.Int, n)
	for i := range rows {
		rows[i] = make([]*big.Int, n)
		for j := range rows[i] {
			v, err := intRange(-bound, bound)
			if err != nil {
				return nil, err
			}
			rows[i][j] = big.NewInt(v)
		}
	}
	return exact.NewMatrixBig(rows)
}

// Fingerprint computes a domain-separated BLAKE3 hash of a basis, with each
// entry length-prefixed so distinct matrices serialize distinctly.
func Fingerprint(m *exact.Matrix) [FingerprintSize]byte {
	h := blake3.New()
	var scratch [8]byte

	h.Write([]byte{byte(len(fingerprintDomain))})
	h.Write([]byte(fingerprintDomain))
	binary.LittleEndian.PutUint64(scratch[:], uint64(m.Dim()))
	h.Write(scratch[:])

	n := m.Dim()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b := m.At(i, j).Bytes()
			sign := byte(0)
			if m.At(i, j).Sign() < 0 {
				sign = 1
			}
			binary.LittleEndian.PutUint64(scratch[:], uint64(len(b)))
			h.Write(scratch[:])
			h.Write([]byte{sign})
			h.Write(b)
		}
	}

	var out [FingerprintSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
