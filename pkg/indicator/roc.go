package indicator

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultROCWindow = 9

/*
ROC implements the rate of change

	ROC = (v - v[n]) / v[n] * 100

where v[n] is the value window steps back, or the oldest value while fewer
have been seen. The first output is 0, as is any output with a zero anchor.

- https://www.investopedia.com/terms/r/rateofchange.asp
*/
type ROC[T any] struct {
	ar num.Arithmetic[T]

	window int
	values deque.Deque[T]
}

func NewROC[T any](ar num.Arithmetic[T], window int) (*ROC[T], error) {
	if err := checkWindow("ROC", window); err != nil {
		return nil, err
	}

	return &ROC[T]{ar: ar, window: window}, nil
}

func DefaultROC[T any](ar num.Arithmetic[T]) *ROC[T] {
	inc, _ := NewROC(ar, DefaultROCWindow)
	return inc
}

func (inc *ROC[T]) Update(v T) T {
	ar := inc.ar

	inc.values.PushBack(v)
	if inc.values.Len() == 1 {
		return ar.Zero()
	}

	var anchor T
	if inc.values.Len() > inc.window {
		anchor = inc.values.PopFront()
	} else {
		anchor = inc.values.Front()
	}

	if ar.Sign(anchor) == 0 {
		return ar.Zero()
	}

	return ar.Mul(ar.Div(ar.Sub(v, anchor), anchor), ar.FromUint32(100))
}

func (inc *ROC[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *ROC[T]) Reset() {
	inc.values.Clear()
}

func (inc *ROC[T]) String() string {
	return fmt.Sprintf("ROC(%d)", inc.window)
}
