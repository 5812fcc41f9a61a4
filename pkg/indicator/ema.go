package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultEMAWindow = 9

/*
ema implements the exponential moving average with k = 2 / (window + 1).
The first input seeds the average.

- https://www.investopedia.com/terms/e/ema.asp
*/
type EMA[T any] struct {
	ar num.Arithmetic[T]

	window  int
	k       T
	value   T
	isFirst bool
}

func NewEMA[T any](ar num.Arithmetic[T], window int) (*EMA[T], error) {
	if err := checkWindow("EMA", window); err != nil {
		return nil, err
	}

	inc := &EMA[T]{
		ar:     ar,
		window: window,
		k:      ar.Div(ar.FromUint32(2), num.FromInt(ar, window+1)),
	}
	inc.Reset()
	return inc, nil
}

func DefaultEMA[T any](ar num.Arithmetic[T]) *EMA[T] {
	inc, _ := NewEMA(ar, DefaultEMAWindow)
	return inc
}

func (inc *EMA[T]) Update(v T) T {
	ar := inc.ar
	if inc.isFirst {
		inc.isFirst = false
		inc.value = v
		return v
	}

	inc.value = ar.Add(ar.Mul(inc.k, v), ar.Mul(ar.Sub(ar.One(), inc.k), inc.value))
	return inc.value
}

func (inc *EMA[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *EMA[T]) Last() T {
	return inc.value
}

func (inc *EMA[T]) Reset() {
	inc.isFirst = true
	inc.value = inc.ar.Zero()
}

func (inc *EMA[T]) String() string {
	return fmt.Sprintf("EMA(%d)", inc.window)
}
