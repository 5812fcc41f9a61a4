package indicator

import (
	"math"
)

// testBar is a plain OHLCV record used to feed the bar entry points.
type testBar struct {
	open, high, low, close, volume float64
}

func (b testBar) GetOpen() float64   { return b.open }
func (b testBar) GetHigh() float64   { return b.high }
func (b testBar) GetLow() float64    { return b.low }
func (b testBar) GetClose() float64  { return b.close }
func (b testBar) GetVolume() float64 { return b.volume }

func hlc(high, low, close float64) testBar {
	return testBar{high: high, low: low, close: close}
}

func closeBar(close float64) testBar {
	return testBar{close: close}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
