package core

import (
	"errors"
	"testing"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/utils"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		ok     bool
	}{
		{"demo 2d", Demo2D, true},
		{"demo 3d", Demo3D, true},
		{"no modulus", Params{Dimension: 4, Modulus: 0}, true},
		{"dimension 1", Params{Dimension: 1, Modulus: 7}, true},
		{"zero dimension", Params{Dimension: 0, Modulus: 7}, false},
		{"negative dimension", Params{Dimension: -2, Modulus: 7}, false},
		{"oversized dimension", Params{Dimension: utils.MaxDimension + 1, Modulus: 7}, false},
		{"negative modulus", Params{Dimension: 2, Modulus: -5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.params)
			if tc.ok && err != nil {
				t.Errorf("Validate(%+v) = %v, want nil", tc.params, err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("Validate(%+v) accepted invalid params", tc.params)
				}
				var ve *latticelab.ValueError
				if !errors.As(err, &ve) {
					t.Errorf("Validate(%+v) = %T, want *ValueError", tc.params, err)
				}
			}
		})
	}
}

func TestDemoParams(t *testing.T) {
	if Demo2D.Dimension != 2 || Demo2D.Modulus != 101 {
		t.Errorf("Demo2D = %+v", Demo2D)
	}
	if Demo3D.Dimension != 3 || Demo3D.Modulus != 97 {
		t.Errorf("Demo3D = %+v", Demo3D)
	}
}

func TestNoiseBound(t *testing.T) {
	tests := []struct {
		dimension int
		want      int64
	}{
		{1, 5},
		{2, 10},
		{3, 15},
		{10, 50},
	}
	for _, tc := range tests {
		if got := NoiseBound(tc.dimension); got != tc.want {
			t.Errorf("NoiseBound(%d) = %d, want %d", tc.dimension, got, tc.want)
		}
	}
}
