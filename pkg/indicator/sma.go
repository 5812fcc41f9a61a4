package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultSMAWindow = 9

/*
sma implements the simple moving average.

Until the window is full the average is taken over the inputs seen so far,
so the first output equals the first input.

- https://www.investopedia.com/terms/s/sma.asp
*/
type SMA[T any] struct {
	ar num.Arithmetic[T]

	window int
	index  int
	count  int
	sum    T
	values []T
}

func NewSMA[T any](ar num.Arithmetic[T], window int) (*SMA[T], error) {
	if err := checkWindow("SMA", window); err != nil {
		return nil, err
	}

	inc := &SMA[T]{ar: ar, window: window}
	inc.Reset()
	return inc, nil
}

func DefaultSMA[T any](ar num.Arithmetic[T]) *SMA[T] {
	inc, _ := NewSMA(ar, DefaultSMAWindow)
	return inc
}

func (inc *SMA[T]) Update(v T) T {
	ar := inc.ar

	inc.index = (inc.index + 1) % inc.window
	old := inc.values[inc.index]
	inc.values[inc.index] = v

	if inc.count < inc.window {
		inc.count++
	}

	inc.sum = ar.Add(ar.Sub(inc.sum, old), v)
	return ar.Div(inc.sum, num.FromInt(ar, inc.count))
}

func (inc *SMA[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *SMA[T]) Reset() {
	inc.index = 0
	inc.count = 0
	inc.sum = inc.ar.Zero()
	inc.values = make([]T, inc.window)
	for i := range inc.values {
		inc.values[i] = inc.ar.Zero()
	}
}

func (inc *SMA[T]) String() string {
	return fmt.Sprintf("SMA(%d)", inc.window)
}
