package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultRSISMMAWindow = 14

const (
	rsiSMMAUpSeed   = 1e-9
	rsiSMMADownSeed = 1e-8
)

// RSISMMA is the Relative Strength Index smoothed with SMMA instead of EMA.
// A flat move feeds zero to both averages.
// Its label is RSI_SMMA(n), distinct from the RSI(n) label of the EMA based RSI.
type RSISMMA[T any] struct {
	ar num.Arithmetic[T]

	up      *SMMA[T]
	down    *SMMA[T]
	prev    T
	isFirst bool
}

func NewRSISMMA[T any](ar num.Arithmetic[T], window int) (*RSISMMA[T], error) {
	if err := checkWindow("RSI_SMMA", window); err != nil {
		return nil, err
	}

	up, _ := NewSMMA(ar, window)
	down, _ := NewSMMA(ar, window)

	inc := &RSISMMA[T]{ar: ar, up: up, down: down}
	inc.Reset()
	return inc, nil
}

func DefaultRSISMMA[T any](ar num.Arithmetic[T]) *RSISMMA[T] {
	inc, _ := NewRSISMMA(ar, DefaultRSISMMAWindow)
	return inc
}

func (inc *RSISMMA[T]) Update(v T) T {
	ar := inc.ar
	up, down := ar.Zero(), ar.Zero()

	if inc.isFirst {
		inc.isFirst = false
		up = ar.FromFloat64(rsiSMMAUpSeed)
		down = ar.FromFloat64(rsiSMMADownSeed)
	} else {
		switch ar.Compare(v, inc.prev) {
		case 1:
			up = ar.Sub(v, inc.prev)
		case -1:
			down = ar.Sub(inc.prev, v)
		}
	}

	inc.prev = v
	return strengthIndex(ar, inc.up.Update(up), inc.down.Update(down))
}

func (inc *RSISMMA[T]) UpdateK(k types.CloseGetter[T]) T {
	return inc.Update(k.GetClose())
}

func (inc *RSISMMA[T]) Reset() {
	inc.isFirst = true
	inc.prev = inc.ar.Zero()
	inc.up.Reset()
	inc.down.Reset()
}

func (inc *RSISMMA[T]) String() string {
	return fmt.Sprintf("RSI_SMMA(%d)", inc.up.window)
}
