package indicator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

const (
	DefaultIchimokuTenkanWindow  = 9
	DefaultIchimokuKijunWindow   = 26
	DefaultIchimokuSenkouBWindow = 52
)

// IchimokuOutput is one row of the ichimoku chart. Fields are filled as they
// become known: the leading spans are written ahead of the current row and
// the chikou span behind it.
type IchimokuOutput[T any] struct {
	Close Optional[T]
	High  Optional[T]
	Low   Optional[T]

	TenkanSen   Optional[T]
	KijunSen    Optional[T]
	SenkouSpanA Optional[T]
	SenkouSpanB Optional[T]
	ChikouSpan  Optional[T]
	KumoColor   Optional[types.Color]
}

/*
Ichimoku implements the Ichimoku Kinko Hyo indicator

	tenkan sen    = (highest high + lowest low) / 2 over the tenkan window
	kijun sen     = (highest high + lowest low) / 2 over the kijun window
	senkou span A = (tenkan + kijun) / 2, plotted kijun rows ahead
	senkou span B = (highest high + lowest low) / 2 over the senkou B window, plotted kijun rows ahead
	chikou span   = close, plotted kijun rows behind

The kumo is green when span A is above span B and red otherwise.

The rows live in a circular buffer of kijun + senkouB slots. Row senkouB-1
is the current bar once senkouB bars have been seen; the rows after it hold
the projected cloud.

- https://www.investopedia.com/terms/i/ichimoku-cloud.asp
*/
type Ichimoku[T any] struct {
	ar num.Arithmetic[T]

	tenkanWindow  int
	kijunWindow   int
	senkouBWindow int

	count int
	rows  *circularQueue[IchimokuOutput[T]]
}

func NewIchimoku[T any](ar num.Arithmetic[T], tenkan, kijun, senkouB int) (*Ichimoku[T], error) {
	if tenkan < 1 || tenkan >= kijun || kijun >= senkouB {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"ICHIMOKU: windows must satisfy 0 < tenkan < kijun < senkouB, got %d, %d, %d", tenkan, kijun, senkouB)
	}

	return &Ichimoku[T]{
		ar:            ar,
		tenkanWindow:  tenkan,
		kijunWindow:   kijun,
		senkouBWindow: senkouB,
		rows:          newCircularQueue[IchimokuOutput[T]](kijun + senkouB),
	}, nil
}

func DefaultIchimoku[T any](ar num.Arithmetic[T]) *Ichimoku[T] {
	inc, _ := NewIchimoku(ar, DefaultIchimokuTenkanWindow, DefaultIchimokuKijunWindow, DefaultIchimokuSenkouBWindow)
	return inc
}

// UpdateK feeds one bar and returns the row of that bar.
func (inc *Ichimoku[T]) UpdateK(k types.HLC[T]) IchimokuOutput[T] {
	ar := inc.ar

	inc.count++
	if inc.count > inc.senkouBWindow {
		inc.rows.shl()
	}

	if inc.count < inc.senkouBWindow {
		row := inc.rows.At(inc.count - 1)
		row.Close, row.High, row.Low = Some(k.GetClose()), Some(k.GetHigh()), Some(k.GetLow())
		return *row
	}

	current := inc.rows.At(inc.senkouBWindow - 1)
	current.Close, current.High, current.Low = Some(k.GetClose()), Some(k.GetHigh()), Some(k.GetLow())

	tenkan := inc.midpoint(inc.tenkanWindow)
	kijun := inc.midpoint(inc.kijunWindow)
	spanA := num.Half(ar, ar.Add(tenkan, kijun))
	spanB := inc.midpoint(inc.senkouBWindow)

	current.TenkanSen = Some(tenkan)
	current.KijunSen = Some(kijun)

	inc.rows.At(inc.senkouBWindow - inc.kijunWindow - 1).ChikouSpan = Some(k.GetClose())

	ahead := inc.rows.At(inc.senkouBWindow + inc.kijunWindow - 1)
	ahead.SenkouSpanA = Some(spanA)
	ahead.SenkouSpanB = Some(spanB)
	if ar.Compare(spanA, spanB) > 0 {
		ahead.KumoColor = Some(types.Green)
	} else {
		ahead.KumoColor = Some(types.Red)
	}

	return *current
}

// midpoint averages the highest high and the lowest low of the last window
// rows ending at the current one.
func (inc *Ichimoku[T]) midpoint(window int) T {
	ar := inc.ar

	var high, low T
	for i := inc.senkouBWindow - window; i < inc.senkouBWindow; i++ {
		row := inc.rows.At(i)
		if i == inc.senkouBWindow-window || ar.Compare(row.High.Value, high) > 0 {
			high = row.High.Value
		}
		if i == inc.senkouBWindow-window || ar.Compare(row.Low.Value, low) < 0 {
			low = row.Low.Value
		}
	}

	return num.Half(ar, ar.Add(high, low))
}

// At returns row i of the buffer, 0 <= i < Len(). It panics when i is out of range.
func (inc *Ichimoku[T]) At(i int) IchimokuOutput[T] {
	return *inc.rows.At(i)
}

func (inc *Ichimoku[T]) Len() int {
	return inc.rows.Len()
}

func (inc *Ichimoku[T]) Reset() {
	inc.count = 0
	inc.rows.reset()
}

func (inc *Ichimoku[T]) String() string {
	return fmt.Sprintf("ICHIMOKU(%d, %d, %d)", inc.tenkanWindow, inc.kijunWindow, inc.senkouBWindow)
}
