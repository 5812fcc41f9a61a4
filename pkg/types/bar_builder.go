package types

import (
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
)

var (
	// ErrBarIncomplete is returned when a price or the volume was never set.
	ErrBarIncomplete = errors.New("bar is incomplete")

	// ErrBarInvalid is returned when the prices or the volume are inconsistent.
	ErrBarInvalid = errors.New("bar is invalid")
)

type field[T any] struct {
	v   T
	set bool
}

func (f *field[T]) put(v T) {
	f.v = v
	f.set = true
}

// BarBuilder collects the fields of a Bar and validates them in Build.
type BarBuilder[T any] struct {
	ar num.Arithmetic[T]

	startTime, endTime time.Time

	open, high, low, close, volume field[T]
}

func NewBarBuilder[T any](ar num.Arithmetic[T]) *BarBuilder[T] {
	return &BarBuilder[T]{ar: ar}
}

func (b *BarBuilder[T]) Open(v T) *BarBuilder[T] {
	b.open.put(v)
	return b
}

func (b *BarBuilder[T]) High(v T) *BarBuilder[T] {
	b.high.put(v)
	return b
}

func (b *BarBuilder[T]) Low(v T) *BarBuilder[T] {
	b.low.put(v)
	return b
}

func (b *BarBuilder[T]) Close(v T) *BarBuilder[T] {
	b.close.put(v)
	return b
}

func (b *BarBuilder[T]) Volume(v T) *BarBuilder[T] {
	b.volume.put(v)
	return b
}

// Time sets the period covered by the bar. It is optional.
func (b *BarBuilder[T]) Time(start, end time.Time) *BarBuilder[T] {
	b.startTime = start
	b.endTime = end
	return b
}

// Build checks that low <= open, close <= high, low >= 0 and volume >= 0.
func (b *BarBuilder[T]) Build() (*Bar[T], error) {
	if !(b.open.set && b.high.set && b.low.set && b.close.set && b.volume.set) {
		return nil, ErrBarIncomplete
	}

	ar := b.ar
	o, h, l, c, v := b.open.v, b.high.v, b.low.v, b.close.v, b.volume.v

	switch {
	case ar.Compare(l, o) > 0, ar.Compare(l, c) > 0, ar.Compare(l, h) > 0:
		return nil, errors.Wrapf(ErrBarInvalid, "low %s is above open, close or high", ar.String(l))
	case ar.Compare(h, o) < 0, ar.Compare(h, c) < 0:
		return nil, errors.Wrapf(ErrBarInvalid, "high %s is below open or close", ar.String(h))
	case ar.Sign(l) < 0:
		return nil, errors.Wrapf(ErrBarInvalid, "negative low %s", ar.String(l))
	case ar.Sign(v) < 0:
		return nil, errors.Wrapf(ErrBarInvalid, "negative volume %s", ar.String(v))
	}

	return &Bar[T]{
		StartTime: b.startTime,
		EndTime:   b.endTime,
		open:      o,
		high:      h,
		low:       l,
		close:     c,
		volume:    v,
	}, nil
}
