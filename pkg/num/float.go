package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Float implements Arithmetic for the built-in floating point types.
type Float[T constraints.Float] struct{}

var (
	Float64 Arithmetic[float64] = Float[float64]{}
	Float32 Arithmetic[float32] = Float[float32]{}
)

func (Float[T]) Zero() T { return 0 }
func (Float[T]) One() T  { return 1 }

func (Float[T]) FromUint32(v uint32) T   { return T(v) }
func (Float[T]) FromFloat64(v float64) T { return T(v) }

func (Float[T]) Parse(s string) (T, error) {
	var zero T
	bits := 64
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
	if err != nil {
		return zero, errors.Wrapf(err, "can not parse %q as float", s)
	}
	return T(f), nil
}

func (Float[T]) String(v T) string {
	bits := 64
	if _, ok := any(v).(float32); ok {
		bits = 32
	}
	return strconv.FormatFloat(float64(v), 'f', -1, bits)
}

func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }
func (Float[T]) Div(a, b T) T { return a / b }

func (Float[T]) Abs(v T) T {
	return T(math.Abs(float64(v)))
}

func (Float[T]) Sign(v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (Float[T]) Compare(a, b T) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
