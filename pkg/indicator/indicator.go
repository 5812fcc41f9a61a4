// Package indicator implements streaming technical analysis indicators.
//
// Every indicator consumes one value (or one bar) at a time and returns the
// updated output without re-scanning history. Indicators are generic over
// the numeric type; the arithmetic is supplied by a num.Arithmetic[T].
//
// Inputs must be fed in chronological order. Indicators are not safe for
// concurrent use.
package indicator

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned by the constructors when a window length
// or a multiplier is out of range.
var ErrInvalidParameter = errors.New("invalid indicator parameter")

// Updater consumes a bare value.
type Updater[T, O any] interface {
	Update(v T) O
}

// KLineUpdater consumes a bar-like record exposing the capabilities in K.
type KLineUpdater[K, O any] interface {
	UpdateK(k K) O
}

type Resetter interface {
	// Reset restores the state the indicator had right after construction.
	Reset()
}

// Indicator is the lifecycle every indicator implements.
type Indicator interface {
	fmt.Stringer
	Resetter
}

// Optional is a value that may not have been computed yet.
type Optional[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

func (o Optional[T]) String() string {
	if !o.Valid {
		return "-"
	}
	return fmt.Sprintf("%v", o.Value)
}

func checkWindow(name string, window int) error {
	if window < 1 {
		return errors.Wrapf(ErrInvalidParameter, "%s: window must be positive, got %d", name, window)
	}
	return nil
}
