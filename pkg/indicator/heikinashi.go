package indicator

import (
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

type HeikinAshiCandle[T any] struct {
	Open  T
	High  T
	Low   T
	Close T
	Color types.Color
}

/*
HeikinAshi transforms bars into heikin ashi candles

	close = (open + high + low + close) / 4
	open  = (prev open + prev close) / 2
	high  = max(high, open, close)
	low   = min(low, open, close)

The first candle opens at the real close. A candle is green when its close
is above its open, red otherwise.

- https://www.investopedia.com/trading/heikin-ashi-better-candlestick/
*/
type HeikinAshi[T any] struct {
	ar num.Arithmetic[T]

	prev    HeikinAshiCandle[T]
	hasPrev bool
}

func NewHeikinAshi[T any](ar num.Arithmetic[T]) *HeikinAshi[T] {
	return &HeikinAshi[T]{ar: ar}
}

func (inc *HeikinAshi[T]) UpdateK(k types.OHLC[T]) HeikinAshiCandle[T] {
	ar := inc.ar

	open := k.GetClose()
	if inc.hasPrev {
		open = num.Half(ar, ar.Add(inc.prev.Open, inc.prev.Close))
	}

	sum := ar.Add(ar.Add(k.GetOpen(), k.GetHigh()), ar.Add(k.GetLow(), k.GetClose()))
	closePrice := ar.Div(sum, ar.FromUint32(4))

	candle := HeikinAshiCandle[T]{
		Open:  open,
		High:  num.Max3(ar, k.GetHigh(), open, closePrice),
		Low:   num.Min3(ar, k.GetLow(), open, closePrice),
		Close: closePrice,
		Color: types.Red,
	}

	if ar.Compare(closePrice, open) > 0 {
		candle.Color = types.Green
	}

	inc.prev = candle
	inc.hasPrev = true
	return candle
}

func (inc *HeikinAshi[T]) Reset() {
	inc.prev = HeikinAshiCandle[T]{}
	inc.hasPrev = false
}

func (inc *HeikinAshi[T]) String() string {
	return "HA()"
}
