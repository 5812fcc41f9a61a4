// Package num abstracts the numeric representation the indicators compute with.
//
// An Arithmetic[T] is passed to every indicator constructor, so the same
// indicator code runs over float64, float32, fixedpoint.Value or
// decimal.Decimal.
package num

// Arithmetic is the set of operations an indicator needs from its numeric type.
type Arithmetic[T any] interface {
	Zero() T
	One() T
	FromUint32(v uint32) T
	FromFloat64(v float64) T
	Parse(s string) (T, error)
	String(v T) string

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div returns a/b. Callers never divide by zero.
	Div(a, b T) T

	Abs(v T) T
	Sign(v T) int
	// Compare returns -1, 0 or +1.
	Compare(a, b T) int
}

func Max[T any](ar Arithmetic[T], a, b T) T {
	if ar.Compare(a, b) >= 0 {
		return a
	}
	return b
}

func Min[T any](ar Arithmetic[T], a, b T) T {
	if ar.Compare(a, b) <= 0 {
		return a
	}
	return b
}

func Max3[T any](ar Arithmetic[T], a, b, c T) T {
	return Max(ar, Max(ar, a, b), c)
}

func Min3[T any](ar Arithmetic[T], a, b, c T) T {
	return Min(ar, Min(ar, a, b), c)
}

func Equal[T any](ar Arithmetic[T], a, b T) bool {
	return ar.Compare(a, b) == 0
}

func IsZero[T any](ar Arithmetic[T], v T) bool {
	return ar.Sign(v) == 0
}

// FromInt converts a non-negative window length or counter.
func FromInt[T any](ar Arithmetic[T], v int) T {
	return ar.FromUint32(uint32(v))
}

// Half returns v / 2.
func Half[T any](ar Arithmetic[T], v T) T {
	return ar.Div(v, ar.FromUint32(2))
}
