package exact

import (
	"encoding/json"
	"math"
	"math/big"

	latticelab "github.com/latticelab/lattice-lab-go"
)

// ParseMatrix constructs a matrix from dynamically typed rows, as produced by
// encoding/json. Entries may be any Go integer type, an integral float,
// *big.Int, or json.Number; anything else is a TypeError. This is the
// construction-time replacement for the runtime type checks a dynamically
// typed caller would rely on.
func ParseMatrix(rows [][]interface{}) (*Matrix, error) {
	n := len(rows)
	if n < 1 {
		return nil, latticelab.ValueErrorf("matrix must have at least one row")
	}
	parsed := make([][]*big.Int, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, latticelab.ShapeErrorf("matrix must be square: row %d has %d entries, want %d", i, len(row), n)
		}
		parsed[i] = make([]*big.Int, n)
		for j, v := range row {
			e, err := ParseEntry(v)
			if err != nil {
				return nil, latticelab.TypeErrorf("matrix entry (%d,%d): %v", i, j, err)
			}
			parsed[i][j] = e
		}
	}
	return NewMatrixBig(parsed)
}

// ParseVector parses a dynamically typed vector with the same entry rules as
// ParseMatrix.
func ParseVector(values []interface{}) ([]*big.Int, error) {
	if len(values) == 0 {
		return nil, latticelab.ValueErrorf("vector must have at least one entry")
	}
	out := make([]*big.Int, len(values))
	for i, v := range values {
		e, err := ParseEntry(v)
		if err != nil {
			return nil, latticelab.TypeErrorf("vector entry %d: %v", i, err)
		}
		out[i] = e
	}
	return out, nil
}

// ParseEntry converts a single dynamically typed value to an exact integer.
// Floats are accepted only when finite and integral; every non-numeric value
// is rejected.
func ParseEntry(v interface{}) (*big.Int, error) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return big.NewInt(int64(x)), nil
	case uint16:
		return big.NewInt(int64(x)), nil
	case uint32:
		return big.NewInt(int64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case float32:
		return floatEntry(float64(x))
	case float64:
		return floatEntry(x)
	case *big.Int:
		if x == nil {
			return nil, latticelab.TypeErrorf("entry is nil")
		}
		return new(big.Int).Set(x), nil
	case json.Number:
		i, ok := new(big.Int).SetString(x.String(), 10)
		if ok {
			return i, nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, latticelab.TypeErrorf("entry %q is not a number", x.String())
		}
		return floatEntry(f)
	case nil:
		return nil, latticelab.TypeErrorf("entry is null")
	case bool:
		return nil, latticelab.TypeErrorf("entry is a boolean, not an integer")
	case string:
		return nil, latticelab.TypeErrorf("entry is a string, not an integer")
	case []interface{}:
		return nil, latticelab.TypeErrorf("entry is a nested list, not an integer")
	case complex64, complex128:
		return nil, latticelab.TypeErrorf("entry is complex, not an integer")
	default:
		return nil, latticelab.TypeErrorf("entry has unsupported type %T", v)
	}
}

func floatEntry(f float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, latticelab.TypeErrorf("entry %v is not a finite number", f)
	}
	if f != math.Trunc(f) {
		return nil, latticelab.TypeErrorf("entry %v is not an integer", f)
	}
	// Integral float64 values above 2^53 are exact but must not round-trip
	// through int64 blindly.
	bf := new(big.Float).SetFloat64(f)
	i, _ := bf.Int(nil)
	return i, nil
}
