package indicator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const (
	DefaultBOLLWindow     = 9
	DefaultBOLLMultiplier = 2
)

type BOLLOutput[T any] struct {
	Average T
	Upper   T
	Lower   T
}

/*
boll implements the bollinger band indicator

The Bollinger Band consists of a middle band (the mean of the window) and an
upper and a lower band placed k standard deviations away from it.

- https://www.investopedia.com/terms/b/bollingerbands.asp
*/
type BOLL[T any] struct {
	ar num.Arithmetic[T]

	sd         *StdDev[T]
	multiplier T
}

func NewBOLL[T any](ar num.Arithmetic[T], window int, multiplier T) (*BOLL[T], error) {
	if ar.Sign(multiplier) <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "BB: multiplier must be positive, got %s", ar.String(multiplier))
	}

	sd, err := NewStdDev(ar, window)
	if err != nil {
		return nil, err
	}

	return &BOLL[T]{ar: ar, sd: sd, multiplier: multiplier}, nil
}

func DefaultBOLL[T any](ar num.Arithmetic[T]) *BOLL[T] {
	inc, _ := NewBOLL(ar, DefaultBOLLWindow, ar.FromUint32(DefaultBOLLMultiplier))
	return inc
}

func (inc *BOLL[T]) Update(v T) BOLLOutput[T] {
	ar := inc.ar

	band := ar.Mul(inc.sd.Update(v), inc.multiplier)
	mean := inc.sd.Mean()
	return BOLLOutput[T]{
		Average: mean,
		Upper:   ar.Add(mean, band),
		Lower:   ar.Sub(mean, band),
	}
}

func (inc *BOLL[T]) UpdateK(k types.CloseGetter[T]) BOLLOutput[T] {
	return inc.Update(k.GetClose())
}

func (inc *BOLL[T]) Reset() {
	inc.sd.Reset()
}

func (inc *BOLL[T]) String() string {
	return fmt.Sprintf("BB(%d, %s)", inc.sd.window, inc.ar.String(inc.multiplier))
}
