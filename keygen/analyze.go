package keygen

import (
	"math/big"

	"github.com/montanaflynn/stats"

	latticelab "github.com/latticelab/lattice-lab-go"
)

// NoiseProfile summarizes the noise distribution of a key pair, recovered as
// public minus private before any modular wraparound is undone. With a
// modulus configured the recovered entries live in [0, modulus), so Mean
// drifts toward modulus/2; without one they stay in the raw noise interval.
type NoiseProfile struct {
	Entries int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Analyze profiles the noise of a generated key pair. It exists for
// demonstrations and sanity checks, not for any security argument.
func Analyze(kp *KeyPair) (*NoiseProfile, error) {
	if kp == nil || kp.Public == nil || kp.Private == nil {
		return nil, latticelab.ValueErrorf("key pair is incomplete")
	}
	if kp.Public.Dim() != kp.Private.Dim() {
		return nil, latticelab.ShapeErrorf("public dimension %d does not match private dimension %d", kp.Public.Dim(), kp.Private.Dim())
	}

	n := kp.Public.Dim()
	samples := make(stats.Float64Data, 0, n*n)
	diff := new(big.Int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			diff.Sub(kp.Public.At(i, j), kp.Private.At(i, j))
			f, _ := new(big.Float).SetInt(diff).Float64()
			samples = append(samples, f)
		}
	}

	mean, err := stats.Mean(samples)
	if err != nil {
		return nil, err
	}
	stddev, err := stats.StandardDeviation(samples)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(samples)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(samples)
	if err != nil {
		return nil, err
	}

	return &NoiseProfile{
		Entries: len(samples),
		Mean:    mean,
		StdDev:  stddev,
		Min:     min,
		Max:     max,
	}, nil
}
