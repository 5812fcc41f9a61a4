package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultFastStochWindow = 14

const (
	DefaultSlowStochWindow    = 14
	DefaultSlowStochEMAWindow = 3
)

/*
FastStoch implements the fast stochastic oscillator (%K):

	%K = 100 * (close - lowest) / (highest - lowest)

The output is 50 when the highest equals the lowest, which is always the
case on the first input.

- https://www.investopedia.com/terms/s/stochasticoscillator.asp
*/
type FastStoch[T any] struct {
	ar num.Arithmetic[T]

	min *MinValue[T]
	max *MaxValue[T]
}

func NewFastStoch[T any](ar num.Arithmetic[T], window int) (*FastStoch[T], error) {
	if err := checkWindow("FAST_STOCH", window); err != nil {
		return nil, err
	}

	minValue, _ := NewMinValue(ar, window)
	maxValue, _ := NewMaxValue(ar, window)
	return &FastStoch[T]{ar: ar, min: minValue, max: maxValue}, nil
}

func DefaultFastStoch[T any](ar num.Arithmetic[T]) *FastStoch[T] {
	inc, _ := NewFastStoch(ar, DefaultFastStochWindow)
	return inc
}

func (inc *FastStoch[T]) Update(v T) T {
	return inc.calculate(v, inc.min.Update(v), inc.max.Update(v))
}

// UpdateK compares the close against the lowest low and the highest high.
func (inc *FastStoch[T]) UpdateK(k types.HLC[T]) T {
	return inc.calculate(k.GetClose(), inc.min.UpdateK(k), inc.max.UpdateK(k))
}

func (inc *FastStoch[T]) calculate(v, lowest, highest T) T {
	ar := inc.ar
	if num.Equal(ar, lowest, highest) {
		return ar.FromUint32(50)
	}

	return ar.Mul(ar.Div(ar.Sub(v, lowest), ar.Sub(highest, lowest)), ar.FromUint32(100))
}

func (inc *FastStoch[T]) Reset() {
	inc.min.Reset()
	inc.max.Reset()
}

func (inc *FastStoch[T]) String() string {
	return fmt.Sprintf("FAST_STOCH(%d)", len(inc.min.ring))
}

// SlowStoch is the EMA of the fast stochastic (%D).
type SlowStoch[T any] struct {
	fast *FastStoch[T]
	ema  *EMA[T]
}

func NewSlowStoch[T any](ar num.Arithmetic[T], window, emaWindow int) (*SlowStoch[T], error) {
	fast, err := NewFastStoch(ar, window)
	if err != nil {
		return nil, err
	}

	ema, err := NewEMA(ar, emaWindow)
	if err != nil {
		return nil, err
	}

	return &SlowStoch[T]{fast: fast, ema: ema}, nil
}

func DefaultSlowStoch[T any](ar num.Arithmetic[T]) *SlowStoch[T] {
	inc, _ := NewSlowStoch(ar, DefaultSlowStochWindow, DefaultSlowStochEMAWindow)
	return inc
}

func (inc *SlowStoch[T]) Update(v T) T {
	return inc.ema.Update(inc.fast.Update(v))
}

func (inc *SlowStoch[T]) UpdateK(k types.HLC[T]) T {
	return inc.ema.Update(inc.fast.UpdateK(k))
}

func (inc *SlowStoch[T]) Reset() {
	inc.fast.Reset()
	inc.ema.Reset()
}

func (inc *SlowStoch[T]) String() string {
	return fmt.Sprintf("SLOW_STOCH(%d, %d)", len(inc.fast.min.ring), inc.ema.window)
}
