package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultATRWindow = 14

/*
atr implements the average true range: the EMA of the true range.

- https://www.investopedia.com/terms/a/atr.asp
*/
type ATR[T any] struct {
	tr  *TR[T]
	ema *EMA[T]
}

func NewATR[T any](ar num.Arithmetic[T], window int) (*ATR[T], error) {
	ema, err := NewEMA(ar, window)
	if err != nil {
		return nil, err
	}

	return &ATR[T]{tr: NewTR(ar), ema: ema}, nil
}

func DefaultATR[T any](ar num.Arithmetic[T]) *ATR[T] {
	inc, _ := NewATR(ar, DefaultATRWindow)
	return inc
}

func (inc *ATR[T]) Update(v T) T {
	return inc.ema.Update(inc.tr.Update(v))
}

func (inc *ATR[T]) UpdateK(k types.HLC[T]) T {
	return inc.ema.Update(inc.tr.UpdateK(k))
}

func (inc *ATR[T]) Reset() {
	inc.tr.Reset()
	inc.ema.Reset()
}

func (inc *ATR[T]) String() string {
	return fmt.Sprintf("ATR(%d)", inc.ema.window)
}
