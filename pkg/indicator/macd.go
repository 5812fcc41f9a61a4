package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const (
	DefaultMACDFastWindow   = 12
	DefaultMACDSlowWindow   = 26
	DefaultMACDSignalWindow = 9
)

type MACDOutput[T any] struct {
	MACD      T
	Signal    T
	Histogram T
}

/*
macd implements the moving average convergence divergence indicator

	macd      = EMA(fast) - EMA(slow)
	signal    = EMA(signal) of macd
	histogram = macd - signal

- https://www.investopedia.com/terms/m/macd.asp
*/
type MACD[T any] struct {
	ar num.Arithmetic[T]

	fast   *EMA[T]
	slow   *EMA[T]
	signal *EMA[T]
}

func NewMACD[T any](ar num.Arithmetic[T], fastWindow, slowWindow, signalWindow int) (*MACD[T], error) {
	fast, err := NewEMA(ar, fastWindow)
	if err != nil {
		return nil, err
	}

	slow, err := NewEMA(ar, slowWindow)
	if err != nil {
		return nil, err
	}

	signal, err := NewEMA(ar, signalWindow)
	if err != nil {
		return nil, err
	}

	return &MACD[T]{ar: ar, fast: fast, slow: slow, signal: signal}, nil
}

func DefaultMACD[T any](ar num.Arithmetic[T]) *MACD[T] {
	inc, _ := NewMACD(ar, DefaultMACDFastWindow, DefaultMACDSlowWindow, DefaultMACDSignalWindow)
	return inc
}

func (inc *MACD[T]) Update(v T) MACDOutput[T] {
	ar := inc.ar

	macd := ar.Sub(inc.fast.Update(v), inc.slow.Update(v))
	signal := inc.signal.Update(macd)
	return MACDOutput[T]{
		MACD:      macd,
		Signal:    signal,
		Histogram: ar.Sub(macd, signal),
	}
}

func (inc *MACD[T]) UpdateK(k types.CloseGetter[T]) MACDOutput[T] {
	return inc.Update(k.GetClose())
}

func (inc *MACD[T]) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
}

func (inc *MACD[T]) String() string {
	return fmt.Sprintf("MACD(%d, %d, %d)", inc.fast.window, inc.slow.window, inc.signal.window)
}
