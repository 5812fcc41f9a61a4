package indicator

import (
	"fmt"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const DefaultMinMaxWindow = 14

// MinValue returns the lowest value of the last n inputs.
type MinValue[T any] struct {
	extremum[T]
}

func NewMinValue[T any](ar num.Arithmetic[T], window int) (*MinValue[T], error) {
	if err := checkWindow("MIN", window); err != nil {
		return nil, err
	}

	return &MinValue[T]{extremum: newExtremum(ar, window, -1)}, nil
}

func DefaultMinValue[T any](ar num.Arithmetic[T]) *MinValue[T] {
	inc, _ := NewMinValue(ar, DefaultMinMaxWindow)
	return inc
}

func (inc *MinValue[T]) Update(v T) T {
	return inc.update(v)
}

// UpdateK tracks the bar low.
func (inc *MinValue[T]) UpdateK(k types.LowGetter[T]) T {
	return inc.update(k.GetLow())
}

func (inc *MinValue[T]) Reset() {
	inc.reset()
}

func (inc *MinValue[T]) String() string {
	return fmt.Sprintf("MIN(%d)", len(inc.ring))
}

// MaxValue returns the highest value of the last n inputs.
type MaxValue[T any] struct {
	extremum[T]
}

func NewMaxValue[T any](ar num.Arithmetic[T], window int) (*MaxValue[T], error) {
	if err := checkWindow("MAX", window); err != nil {
		return nil, err
	}

	return &MaxValue[T]{extremum: newExtremum(ar, window, 1)}, nil
}

func DefaultMaxValue[T any](ar num.Arithmetic[T]) *MaxValue[T] {
	inc, _ := NewMaxValue(ar, DefaultMinMaxWindow)
	return inc
}

func (inc *MaxValue[T]) Update(v T) T {
	return inc.update(v)
}

// UpdateK tracks the bar high.
func (inc *MaxValue[T]) UpdateK(k types.HighGetter[T]) T {
	return inc.update(k.GetHigh())
}

func (inc *MaxValue[T]) Reset() {
	inc.reset()
}

func (inc *MaxValue[T]) String() string {
	return fmt.Sprintf("MAX(%d)", len(inc.ring))
}
