package indicator

import (
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

/*
obv implements on-balance volume indicator

The volume is added when the close rises and subtracted when it falls.
The previous close starts at zero, so the first bar adds its volume unless
its close is not positive.

On-Balance Volume (OBV) Definition
- https://www.investopedia.com/terms/o/onbalancevolume.asp
*/
type OBV[T any] struct {
	ar num.Arithmetic[T]

	value     T
	prevClose T
}

func NewOBV[T any](ar num.Arithmetic[T]) *OBV[T] {
	inc := &OBV[T]{ar: ar}
	inc.Reset()
	return inc
}

func (inc *OBV[T]) UpdateK(k types.CloseVolume[T]) T {
	ar := inc.ar
	closePrice := k.GetClose()

	switch ar.Compare(closePrice, inc.prevClose) {
	case 1:
		inc.value = ar.Add(inc.value, k.GetVolume())
	case -1:
		inc.value = ar.Sub(inc.value, k.GetVolume())
	}

	inc.prevClose = closePrice
	return inc.value
}

func (inc *OBV[T]) Reset() {
	inc.value = inc.ar.Zero()
	inc.prevClose = inc.ar.Zero()
}

func (inc *OBV[T]) String() string {
	return "OBV"
}
