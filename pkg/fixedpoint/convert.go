package fixedpoint

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPow = 1e8

const defaultPowInt int64 = 100_000_000

// Value is a fixed point number stored as an int64 scaled by DefaultPow.
type Value int64

const Zero = Value(0)

const One = Value(defaultPowInt)

var ErrDivisionByZero = errors.New("fixedpoint: division by zero")

func (v Value) Float64() float64 {
	return float64(v) / DefaultPow
}

func (v Value) Mul(v2 Value) Value {
	return NewFromFloat(v.Float64() * v2.Float64())
}

// Div panics with ErrDivisionByZero when v2 is zero, the same way integer division does.
func (v Value) Div(v2 Value) Value {
	if v2 == 0 {
		panic(ErrDivisionByZero)
	}

	return NewFromFloat(v.Float64() / v2.Float64())
}

func (v Value) Sub(v2 Value) Value {
	return Value(int64(v) - int64(v2))
}

func (v Value) Add(v2 Value) Value {
	return Value(int64(v) + int64(v2))
}

func (v Value) Abs() Value {
	if v < 0 {
		return -v
	}
	return v
}

func (v Value) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (v Value) Compare(v2 Value) int {
	switch {
	case v > v2:
		return 1
	case v < v2:
		return -1
	}
	return 0
}

func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
}

func NewFromString(input string) (Value, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "fixedpoint: can not parse %q", input)
	}

	return NewFromFloat(v), nil
}

func NewFromFloat(val float64) Value {
	return Value(int64(math.Round(val * DefaultPow)))
}

func NewFromInt(val int64) Value {
	return Value(val * defaultPowInt)
}
