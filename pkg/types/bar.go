package types

import (
	"fmt"
	"time"
)

// OpenGetter exposes the opening price of a bar.
type OpenGetter[T any] interface {
	GetOpen() T
}

type HighGetter[T any] interface {
	GetHigh() T
}

type LowGetter[T any] interface {
	GetLow() T
}

type CloseGetter[T any] interface {
	GetClose() T
}

type VolumeGetter[T any] interface {
	GetVolume() T
}

// HLC is required by the range based indicators (true range, stochastic, ichimoku).
type HLC[T any] interface {
	HighGetter[T]
	LowGetter[T]
	CloseGetter[T]
}

type OHLC[T any] interface {
	OpenGetter[T]
	HLC[T]
}

type CloseVolume[T any] interface {
	CloseGetter[T]
	VolumeGetter[T]
}

type OHLCV[T any] interface {
	OHLC[T]
	VolumeGetter[T]
}

// Bar is an immutable OHLCV snapshot. Build it with BarBuilder so the
// price consistency rules are checked once.
type Bar[T any] struct {
	StartTime time.Time
	EndTime   time.Time

	open, high, low, close, volume T
}

var _ OHLCV[float64] = (*Bar[float64])(nil)

func (b *Bar[T]) GetOpen() T   { return b.open }
func (b *Bar[T]) GetHigh() T   { return b.high }
func (b *Bar[T]) GetLow() T    { return b.low }
func (b *Bar[T]) GetClose() T  { return b.close }
func (b *Bar[T]) GetVolume() T { return b.volume }

func (b *Bar[T]) String() string {
	return fmt.Sprintf("Bar{%s O:%v H:%v L:%v C:%v V:%v}",
		b.StartTime.Format(time.RFC3339), b.open, b.high, b.low, b.close, b.volume)
}
