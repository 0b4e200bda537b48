// Package main provides the lattice-lab-cli command line interface for
// lattice geometry and toy key generation.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	latticelab "github.com/latticelab/lattice-lab-go"
	"github.com/latticelab/lattice-lab-go/basis"
	"github.com/latticelab/lattice-lab-go/core"
	"github.com/latticelab/lattice-lab-go/exact"
	"github.com/latticelab/lattice-lab-go/keygen"
	"github.com/latticelab/lattice-lab-go/lattice"
	"github.com/latticelab/lattice-lab-go/parallelepiped"
)

const appName = "lattice-lab-cli"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, latticelab.Version)
	case "keygen":
		handleKeygen(os.Args[2:])
	case "basis":
		handleBasis(os.Args[2:])
	case "points":
		handlePoints(os.Args[2:])
	case "det":
		handleDet(os.Args[2:])
	case "contains":
		handleContains(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - toy lattice geometry and key generation

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    keygen      Generate a public/private basis pair
    basis       Generate a good or bad basis
    points      Enumerate lattice points over ranges
    det         Determinant of a basis matrix
    contains    Test parallelepiped point containment
    version     Show version information
    help        Show this help message

EXAMPLES:
    # Generate a key pair (defaults: dimension 2, modulus 101)
    %s keygen --dimension 3 --modulus 97

    # Generate a unimodular bad basis and report its quality
    %s basis --kind bad --dimension 3

    # Enumerate points of a lattice
    %s points --basis '[[1,0],[0,1]]' --ranges '[[-1,1],[-1,1]]'

    # Determinant, reduced modulo 7
    %s det --basis '[[2,1],[1,2]]' --modulus 7

    # Containment in the parallelepiped spanned by the given vectors
    %s contains --vectors '[[1,0],[0,1]]' --point '[1,1]'
`, appName, appName, appName, appName, appName, appName, appName)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// parseFlags splits "--name value" pairs; unknown flags are an error.
func parseFlags(args []string, allowed map[string]bool) (map[string]string, error) {
	flags := make(map[string]string)
	for i := 0; i < len(args); i++ {
		name := args[i]
		if len(name) < 3 || name[:2] != "--" {
			return nil, fmt.Errorf("unexpected argument %q", name)
		}
		name = name[2:]
		if !allowed[name] {
			return nil, fmt.Errorf("unknown flag --%s", name)
		}
		if i+1 >= len(args) {
			return nil, fmt.Errorf("flag --%s needs a value", name)
		}
		i++
		flags[name] = args[i]
	}
	return flags, nil
}

func intFlag(flags map[string]string, name string, def int) (int, error) {
	v, ok := flags[name]
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("flag --%s: %w", name, err)
	}
	return i, nil
}

func int64Flag(flags map[string]string, name string, def int64) (int64, error) {
	v, ok := flags[name]
	if !ok {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("flag --%s: %w", name, err)
	}
	return i, nil
}

// jsonMatrix decodes a JSON matrix into dynamically typed rows; entry
// validation happens in exact.ParseMatrix so bad entries surface as the
// library's TypeError kind.
func jsonMatrix(text string) ([][]interface{}, error) {
	var rows [][]interface{}
	if err := json.Unmarshal([]byte(text), &rows); err != nil {
		return nil, fmt.Errorf("invalid matrix JSON: %w", err)
	}
	return rows, nil
}

func handleKeygen(args []string) {
	flags, err := parseFlags(args, map[string]bool{"dimension": true, "modulus": true, "seed": true})
	if err != nil {
		fail(err)
	}
	dimension, err := intFlag(flags, "dimension", core.Demo2D.Dimension)
	if err != nil {
		fail(err)
	}
	modulus, err := int64Flag(flags, "modulus", core.Demo2D.Modulus)
	if err != nil {
		fail(err)
	}

	system, err := keygen.New(dimension, modulus)
	if err != nil {
		fail(err)
	}

	var kp *keygen.KeyPair
	if seedHex, ok := flags["seed"]; ok {
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			fail(fmt.Errorf("flag --seed: %w", err))
		}
		kp, err = system.GenerateKeysFromSeed(seed)
		if err != nil {
			fail(err)
		}
	} else {
		kp, err = system.GenerateKeys()
		if err != nil {
			fail(err)
		}
	}

	fmt.Println("Generated Public Basis:")
	fmt.Println(kp.Public)
	fmt.Println()
	fmt.Println("Generated Private Basis:")
	fmt.Println(kp.Private)
	fmt.Println()
	fmt.Printf("Fingerprint: %s\n", hex.EncodeToString(kp.Fingerprint[:]))

	profile, err := keygen.Analyze(kp)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Noise profile: entries=%d mean=%.2f stddev=%.2f min=%.0f max=%.0f\n",
		profile.Entries, profile.Mean, profile.StdDev, profile.Min, profile.Max)
}

func handleBasis(args []string) {
	flags, err := parseFlags(args, map[string]bool{"kind": true, "dimension": true, "shear-lo": true, "shear-hi": true})
	if err != nil {
		fail(err)
	}
	dimension, err := intFlag(flags, "dimension", core.Demo2D.Dimension)
	if err != nil {
		fail(err)
	}
	shearLo, err := int64Flag(flags, "shear-lo", basis.DefaultShearRange.Lo)
	if err != nil {
		fail(err)
	}
	shearHi, err := int64Flag(flags, "shear-hi", basis.DefaultShearRange.Hi)
	if err != nil {
		fail(err)
	}

	kind := flags["kind"]
	if kind == "" {
		kind = "bad"
	}

	switch kind {
	case "good":
		m, err := basis.Good(dimension)
		if err != nil {
			fail(err)
		}
		fmt.Println(m)
		fmt.Printf("Determinant: %s\n", m.Det())
		fmt.Printf("Hadamard ratio: %.4f\n", basis.HadamardRatio(m))
	case "bad":
		m, err := basis.Bad(dimension, latticelab.Range{Lo: shearLo, Hi: shearHi})
		if err != nil {
			fail(err)
		}
		fmt.Println(m)
		fmt.Printf("Determinant: %s\n", m.Det())
		fmt.Printf("Hadamard ratio: %.4f\n", basis.HadamardRatio(m))
	default:
		fail(fmt.Errorf("unknown basis kind %q (want good or bad)", kind))
	}
}

func handlePoints(args []string) {
	flags, err := parseFlags(args, map[string]bool{"basis": true, "modulus": true, "ranges": true})
	if err != nil {
		fail(err)
	}
	if flags["basis"] == "" || flags["ranges"] == "" {
		fail(fmt.Errorf("points requires --basis and --ranges"))
	}
	modulus, err := int64Flag(flags, "modulus", 0)
	if err != nil {
		fail(err)
	}

	rows, err := jsonMatrix(flags["basis"])
	if err != nil {
		fail(err)
	}
	lat, err := lattice.NewFromValues(rows, modulus)
	if err != nil {
		fail(err)
	}

	var rawRanges [][2]int64
	if err := json.Unmarshal([]byte(flags["ranges"]), &rawRanges); err != nil {
		fail(fmt.Errorf("invalid ranges JSON: %w", err))
	}
	ranges := make([]latticelab.Range, len(rawRanges))
	for i, r := range rawRanges {
		ranges[i] = latticelab.Range{Lo: r[0], Hi: r[1]}
	}

	points, err := lat.GeneratePoints(ranges...)
	if err != nil {
		fail(err)
	}
	for _, p := range points {
		fmt.Println(p)
	}
	fmt.Printf("%d points\n", len(points))
}

func handleDet(args []string) {
	flags, err := parseFlags(args, map[string]bool{"basis": true, "modulus": true})
	if err != nil {
		fail(err)
	}
	if flags["basis"] == "" {
		fail(fmt.Errorf("det requires --basis"))
	}
	modulus, err := int64Flag(flags, "modulus", 0)
	if err != nil {
		fail(err)
	}

	rows, err := jsonMatrix(flags["basis"])
	if err != nil {
		fail(err)
	}
	lat, err := lattice.NewFromValues(rows, modulus)
	if err != nil {
		fail(err)
	}
	fmt.Println(lat.Determinant())
}

func handleContains(args []string) {
	flags, err := parseFlags(args, map[string]bool{"vectors": true, "point": true})
	if err != nil {
		fail(err)
	}
	if flags["vectors"] == "" || flags["point"] == "" {
		fail(fmt.Errorf("contains requires --vectors and --point"))
	}

	rows, err := jsonMatrix(flags["vectors"])
	if err != nil {
		fail(err)
	}

	// The lattice reference exists for dimension compatibility; an identity
	// lattice of the right size serves.
	idRows := make([][]int64, len(rows))
	for i := range idRows {
		idRows[i] = make([]int64, len(rows))
		idRows[i][i] = 1
	}
	lat, err := lattice.New(idRows)
	if err != nil {
		fail(err)
	}

	pp, err := parallelepiped.NewFromValues(lat, rows)
	if err != nil {
		fail(err)
	}

	var point []interface{}
	if err := json.Unmarshal([]byte(flags["point"]), &point); err != nil {
		fail(fmt.Errorf("invalid point JSON: %w", err))
	}
	coords, err := exact.ParseVector(point)
	if err != nil {
		fail(err)
	}

	inside, err := pp.ContainsPointBig(coords)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Volume: %s\n", pp.Volume())
	if inside {
		fmt.Println("Point is contained (boundary inclusive)")
	} else {
		fmt.Println("Point is not contained")
	}
}
