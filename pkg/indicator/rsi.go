package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultRSIWindow = 14

// rsiSeed is fed to both averages on the first value so they never start at zero.
const rsiSeed = 0.1

/*
rsi implements the Relative Strength Index with EMA smoothing:

	RSI = 100 * up / (up + down)

where up and down are the EMA of the upward and downward moves.
The output is 50 when both averages are zero.

- https://www.investopedia.com/terms/r/rsi.asp
*/
type RSI[T any] struct {
	ar num.Arithmetic[T]

	up      *EMA[T]
	down    *EMA[T]
	prev    T
	isFirst bool
}

func NewRSI[T any](ar num.Arithmetic[T], window int) (*RSI[T], error) {
	if err := checkWindow("RSI", window); err != nil {
		return nil, err
	}

	up, _ := NewEMA(ar, window)
	down, _ := NewEMA(ar, window)

	inc := &RSI[T]{ar: ar, up: up, down: down}
	inc.Reset()
	return inc, nil
}

func DefaultRSI[T any](ar num.Arithmetic[T]) *RSI[T] {
	inc, _ := NewRSI(ar, DefaultRSIWindow)
	return inc
}

func (inc *RSI[T]) Update(v T) T {
	ar := inc.ar
	up, down := ar.Zero(), ar.Zero()

	if inc.isFirst {
		inc.isFirst = false
		up = ar.FromFloat64(rsiSeed)
		down = ar.FromFloat64(rsiSeed)
	} else if ar.Compare(v, inc.prev) > 0 {
		up = ar.Sub(v, inc.prev)
	} else {
		down = ar.Sub(inc.prev, v)
	}

	inc.prev = v
	return strengthIndex(ar, inc.up.Update(up), inc.down.Update(down))
}

func (inc *RSI[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *RSI[T]) Reset() {
	inc.isFirst = true
	inc.prev = inc.ar.Zero()
	inc.up.Reset()
	inc.down.Reset()
}

func (inc *RSI[T]) String() string {
	return fmt.Sprintf("RSI(%d)", inc.up.window)
}

func strengthIndex[T any](ar num.Arithmetic[T], up, down T) T {
	sum := ar.Add(up, down)
	if ar.Sign(sum) == 0 {
		return ar.FromUint32(50)
	}

	return ar.Div(ar.Mul(ar.FromUint32(100), up), sum)
}
