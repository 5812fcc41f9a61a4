package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultSMMAWindow = 9

/*
smma implements the smoothed (modified) moving average:

	smma = (smma * (window - 1) + v) / window

The first input seeds the average. The weight of the newest sample is
1/window, not the 2/(window+1) of EMA.

- https://en.wikipedia.org/wiki/Moving_average#Modified_moving_average
*/
type SMMA[T any] struct {
	ar num.Arithmetic[T]

	window  int
	value   T
	isFirst bool
}

func NewSMMA[T any](ar num.Arithmetic[T], window int) (*SMMA[T], error) {
	if err := checkWindow("SMMA", window); err != nil {
		return nil, err
	}

	inc := &SMMA[T]{ar: ar, window: window}
	inc.Reset()
	return inc, nil
}

func DefaultSMMA[T any](ar num.Arithmetic[T]) *SMMA[T] {
	inc, _ := NewSMMA(ar, DefaultSMMAWindow)
	return inc
}

func (inc *SMMA[T]) Update(v T) T {
	ar := inc.ar
	if inc.isFirst {
		inc.isFirst = false
		inc.value = v
		return v
	}

	n := num.FromInt(ar, inc.window)
	inc.value = ar.Div(ar.Add(ar.Mul(inc.value, ar.Sub(n, ar.One())), v), n)
	return inc.value
}

func (inc *SMMA[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *SMMA[T]) Reset() {
	inc.isFirst = true
	inc.value = inc.ar.Zero()
}

func (inc *SMMA[T]) String() string {
	return fmt.Sprintf("SMMA(%d)", inc.window)
}
