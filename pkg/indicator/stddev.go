package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultStdDevWindow = 9

/*
StdDev is the rolling population standard deviation.

It keeps the running mean and the sum of squared deviations with Welford's
algorithm. Once the window is full the oldest value is removed and the new
one added in a single step.

- https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
*/
type StdDev[T any] struct {
	ar num.Arithmetic[T]

	window int
	index  int
	count  int
	m      T
	m2     T
	values []T
}

func NewStdDev[T any](ar num.Arithmetic[T], window int) (*StdDev[T], error) {
	if err := checkWindow("SD", window); err != nil {
		return nil, err
	}

	inc := &StdDev[T]{ar: ar, window: window}
	inc.Reset()
	return inc, nil
}

func DefaultStdDev[T any](ar num.Arithmetic[T]) *StdDev[T] {
	inc, _ := NewStdDev(ar, DefaultStdDevWindow)
	return inc
}

func (inc *StdDev[T]) Update(v T) T {
	ar := inc.ar

	inc.index = (inc.index + 1) % inc.window
	old := inc.values[inc.index]
	inc.values[inc.index] = v

	if inc.count < inc.window {
		inc.count++
		delta := ar.Sub(v, inc.m)
		inc.m = ar.Add(inc.m, ar.Div(delta, num.FromInt(ar, inc.count)))
		inc.m2 = ar.Add(inc.m2, ar.Mul(delta, ar.Sub(v, inc.m)))
	} else {
		delta := ar.Sub(v, old)
		oldM := inc.m
		inc.m = ar.Add(inc.m, ar.Div(delta, num.FromInt(ar, inc.window)))
		delta2 := ar.Add(ar.Sub(v, inc.m), ar.Sub(old, oldM))
		inc.m2 = ar.Add(inc.m2, ar.Mul(delta, delta2))
	}

	// rounding can push the sum of squares slightly below zero
	variance := ar.Div(inc.m2, num.FromInt(ar, inc.count))
	if ar.Sign(variance) < 0 {
		variance = ar.Zero()
	}

	return sqrt(ar, variance)
}

func (inc *StdDev[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

// Mean returns the mean of the buffered values.
func (inc *StdDev[T]) Mean() T {
	return inc.m
}

func (inc *StdDev[T]) Reset() {
	inc.index = 0
	inc.count = 0
	inc.m = inc.ar.Zero()
	inc.m2 = inc.ar.Zero()
	inc.values = make([]T, inc.window)
	for i := range inc.values {
		inc.values[i] = inc.ar.Zero()
	}
}

func (inc *StdDev[T]) String() string {
	return fmt.Sprintf("SD(%d)", inc.window)
}
