package lang

import (
	"math"
	"strconv"
)

// Value is a numeric result tagged as either a 64-bit integer or a
// double-precision float. The tag mirrors whether the source literals
// carried a decimal point and propagates through arithmetic.
type Value struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// IntValue returns an integer-tagged value.
func IntValue(n int64) Value {
	return Value{Int: n}
}

// FloatValue returns a float-tagged value.
func FloatValue(f float64) Value {
	return Value{Float: f, IsFloat: true}
}

// AsFloat returns the value widened to float64.
func (v Value) AsFloat() float64 {
	if v.IsFloat {
		return v.Float
	}
	return float64(v.Int)
}

// IsZero reports whether the value equals zero under either tag.
func (v Value) IsZero() bool {
	if v.IsFloat {
		return v.Float == 0
	}
	return v.Int == 0
}

// String formats the value for display. A float-tagged value with no
// fractional part is shown in integer form, so 4/2 displays as "2".
// Finite floats never use exponent notation, so any displayed result can
// be fed back in as input.
func (v Value) String() string {
	if !v.IsFloat {
		return strconv.FormatInt(v.Int, 10)
	}
	f := v.Float
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
