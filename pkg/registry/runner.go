package registry

import (
	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

type runner[T any] struct {
	label   string
	columns []string
	push    func(bar *types.Bar[T]) []string
	reset   func()
}

func (r *runner[T]) String() string {
	return r.label
}

func (r *runner[T]) Columns() []string {
	return r.columns
}

func (r *runner[T]) Push(bar *types.Bar[T]) []string {
	return r.push(bar)
}

func (r *runner[T]) Reset() {
	r.reset()
}

// scalar wraps an indicator with a single numeric output.
func scalar[T any](ar num.Arithmetic[T], inc indicator.Indicator, update func(b *types.Bar[T]) T) Runner[T] {
	label := inc.String()
	return &runner[T]{
		label:   label,
		columns: []string{label},
		push: func(b *types.Bar[T]) []string {
			return []string{ar.String(update(b))}
		},
		reset: inc.Reset,
	}
}

func suffixed(label string, suffixes ...string) []string {
	columns := make([]string, len(suffixes))
	for i, s := range suffixes {
		columns[i] = label + "." + s
	}
	return columns
}

func macdRunner[T any](ar num.Arithmetic[T], inc *indicator.MACD[T]) Runner[T] {
	label := inc.String()
	return &runner[T]{
		label:   label,
		columns: suffixed(label, "macd", "signal", "histogram"),
		push: func(b *types.Bar[T]) []string {
			out := inc.UpdateK(b)
			return []string{ar.String(out.MACD), ar.String(out.Signal), ar.String(out.Histogram)}
		},
		reset: inc.Reset,
	}
}

func bollRunner[T any](ar num.Arithmetic[T], inc *indicator.BOLL[T]) Runner[T] {
	label := inc.String()
	return &runner[T]{
		label:   label,
		columns: suffixed(label, "average", "upper", "lower"),
		push: func(b *types.Bar[T]) []string {
			out := inc.UpdateK(b)
			return []string{ar.String(out.Average), ar.String(out.Upper), ar.String(out.Lower)}
		},
		reset: inc.Reset,
	}
}

func heikinAshiRunner[T any](ar num.Arithmetic[T], inc *indicator.HeikinAshi[T]) Runner[T] {
	label := inc.String()
	return &runner[T]{
		label:   label,
		columns: suffixed(label, "open", "high", "low", "close", "color"),
		push: func(b *types.Bar[T]) []string {
			c := inc.UpdateK(b)
			return []string{ar.String(c.Open), ar.String(c.High), ar.String(c.Low), ar.String(c.Close), c.Color.String()}
		},
		reset: inc.Reset,
	}
}

func ichimokuRunner[T any](ar num.Arithmetic[T], inc *indicator.Ichimoku[T]) Runner[T] {
	label := inc.String()
	optional := func(o indicator.Optional[T]) string {
		if !o.Valid {
			return "-"
		}
		return ar.String(o.Value)
	}

	return &runner[T]{
		label:   label,
		columns: suffixed(label, "tenkan", "kijun", "senkou_a", "senkou_b", "kumo"),
		push: func(b *types.Bar[T]) []string {
			row := inc.UpdateK(b)
			kumo := "-"
			if row.KumoColor.Valid {
				kumo = row.KumoColor.Value.String()
			}
			return []string{
				optional(row.TenkanSen),
				optional(row.KijunSen),
				optional(row.SenkouSpanA),
				optional(row.SenkouSpanB),
				kumo,
			}
		},
		reset: inc.Reset,
	}
}
