package indicator

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultERWindow = 14

/*
ER implements Kaufman's efficiency ratio

	ER = |first - last| / sum(|v[i] - v[i-1]|)

over the last window+1 values. With fewer than three values buffered the
output is 1, and it is 0 when the volatility is zero.

- https://www.investopedia.com/terms/k/kaufmansadaptivemovingaverage.asp
*/
type ER[T any] struct {
	ar num.Arithmetic[T]

	window int
	values deque.Deque[T]
}

func NewER[T any](ar num.Arithmetic[T], window int) (*ER[T], error) {
	if err := checkWindow("ER", window); err != nil {
		return nil, err
	}

	return &ER[T]{ar: ar, window: window}, nil
}

func DefaultER[T any](ar num.Arithmetic[T]) *ER[T] {
	inc, _ := NewER(ar, DefaultERWindow)
	return inc
}

func (inc *ER[T]) Update(v T) T {
	ar := inc.ar

	inc.values.PushBack(v)
	if inc.values.Len() <= 2 {
		return ar.One()
	}

	direction := ar.Abs(ar.Sub(inc.values.Front(), inc.values.Back()))

	volatility := ar.Zero()
	for i := 1; i < inc.values.Len(); i++ {
		volatility = ar.Add(volatility, ar.Abs(ar.Sub(inc.values.At(i), inc.values.At(i-1))))
	}

	if inc.values.Len() > inc.window {
		inc.values.PopFront()
	}

	if ar.Sign(volatility) == 0 {
		return ar.Zero()
	}

	return ar.Div(direction, volatility)
}

func (inc *ER[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *ER[T]) Reset() {
	inc.values.Clear()
}

func (inc *ER[T]) String() string {
	return fmt.Sprintf("ER(%d)", inc.window)
}
