package num

import "github.com/c9s/streamta/pkg/fixedpoint"

type fixedArithmetic struct{}

// Fixed computes with fixedpoint.Value.
var Fixed Arithmetic[fixedpoint.Value] = fixedArithmetic{}

func (fixedArithmetic) Zero() fixedpoint.Value { return fixedpoint.Zero }
func (fixedArithmetic) One() fixedpoint.Value  { return fixedpoint.One }

func (fixedArithmetic) FromUint32(v uint32) fixedpoint.Value {
	return fixedpoint.NewFromInt(int64(v))
}

func (fixedArithmetic) FromFloat64(v float64) fixedpoint.Value {
	return fixedpoint.NewFromFloat(v)
}

func (fixedArithmetic) Parse(s string) (fixedpoint.Value, error) {
	return fixedpoint.NewFromString(s)
}

func (fixedArithmetic) String(v fixedpoint.Value) string { return v.String() }

func (fixedArithmetic) Add(a, b fixedpoint.Value) fixedpoint.Value { return a.Add(b) }
func (fixedArithmetic) Sub(a, b fixedpoint.Value) fixedpoint.Value { return a.Sub(b) }
func (fixedArithmetic) Mul(a, b fixedpoint.Value) fixedpoint.Value { return a.Mul(b) }
func (fixedArithmetic) Div(a, b fixedpoint.Value) fixedpoint.Value { return a.Div(b) }

func (fixedArithmetic) Abs(v fixedpoint.Value) fixedpoint.Value { return v.Abs() }
func (fixedArithmetic) Sign(v fixedpoint.Value) int             { return v.Sign() }

func (fixedArithmetic) Compare(a, b fixedpoint.Value) int { return a.Compare(b) }
