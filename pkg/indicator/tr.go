package indicator

import (
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

/*
TR implements the true range.

Over bars the range of the first bar is high - low, later bars take the
largest of high - low, |high - prevClose| and |low - prevClose|.

Over bare values the output is |v - prev|, zero for the first value.

Both entry points share the previous value: Update stores the input and
UpdateK stores the close. Feed one instance from a single kind of input.

- https://www.investopedia.com/terms/a/atr.asp
*/
type TR[T any] struct {
	ar num.Arithmetic[T]

	prev    T
	hasPrev bool
}

func NewTR[T any](ar num.Arithmetic[T]) *TR[T] {
	inc := &TR[T]{ar: ar}
	inc.Reset()
	return inc
}

func (inc *TR[T]) Update(v T) T {
	ar := inc.ar

	out := ar.Zero()
	if inc.hasPrev {
		out = ar.Abs(ar.Sub(v, inc.prev))
	}

	inc.prev = v
	inc.hasPrev = true
	return out
}

func (inc *TR[T]) UpdateK(k types.HLC[T]) T {
	ar := inc.ar
	high, low := k.GetHigh(), k.GetLow()

	out := ar.Sub(high, low)
	if inc.hasPrev {
		out = num.Max3(ar, out,
			ar.Abs(ar.Sub(high, inc.prev)),
			ar.Abs(ar.Sub(low, inc.prev)))
	}

	inc.prev = k.GetClose()
	inc.hasPrev = true
	return out
}

func (inc *TR[T]) Reset() {
	inc.prev = inc.ar.Zero()
	inc.hasPrev = false
}

func (inc *TR[T]) String() string {
	return "TRUE_RANGE()"
}
