package registry

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

type builtin[T any] struct {
	metadata Metadata
	factory  Factory[T]
}

func itoa(values ...int) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return s
}

// windowed registers an indicator configured by window lengths only.
func windowed[T any](metadata Metadata, build func(ar num.Arithmetic[T], w []int) (Runner[T], error)) builtin[T] {
	return builtin[T]{
		metadata: metadata,
		factory: func(ar num.Arithmetic[T], params []string) (Runner[T], error) {
			windows, err := parseWindows(params)
			if err != nil {
				return nil, err
			}
			return build(ar, windows)
		},
	}
}

func builtins[T any]() []builtin[T] {
	return []builtin[T]{
		windowed(Metadata{
			Name: "MIN", Category: "price", Description: "lowest low of the window",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultMinMaxWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewMinValue(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "MAX", Category: "price", Description: "highest high of the window",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultMinMaxWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewMaxValue(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "SMA", Category: "trend", Description: "simple moving average of the close",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultSMAWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewSMA(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "SD", Category: "volatility", Description: "population standard deviation of the close",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultStdDevWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewStdDev(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "EMA", Category: "trend", Description: "exponential moving average of the close",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultEMAWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewEMA(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "SMMA", Category: "trend", Description: "smoothed moving average of the close",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultSMMAWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewSMMA(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "TRUE_RANGE", Category: "volatility", Description: "true range of the bar",
		}, func(ar num.Arithmetic[T], _ []int) (Runner[T], error) {
			inc := indicator.NewTR(ar)
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "ATR", Category: "volatility", Description: "average true range",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultATRWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewATR(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "RSI", Category: "momentum", Description: "relative strength index, EMA smoothing",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultRSIWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewRSI(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "RSI_SMMA", Category: "momentum", Description: "relative strength index, SMMA smoothing",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultRSISMMAWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewRSISMMA(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "FAST_STOCH", Category: "momentum", Description: "fast stochastic oscillator %K",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultFastStochWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewFastStoch(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "SLOW_STOCH", Category: "momentum", Description: "slow stochastic oscillator %D",
			Parameters: []string{"window", "ema_window"},
			Defaults:   itoa(indicator.DefaultSlowStochWindow, indicator.DefaultSlowStochEMAWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewSlowStoch(ar, w[0], w[1])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "MACD", Category: "trend", Description: "moving average convergence divergence",
			Parameters: []string{"fast", "slow", "signal"},
			Defaults:   itoa(indicator.DefaultMACDFastWindow, indicator.DefaultMACDSlowWindow, indicator.DefaultMACDSignalWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewMACD(ar, w[0], w[1], w[2])
			if err != nil {
				return nil, err
			}
			return macdRunner(ar, inc), nil
		}),
		{
			metadata: Metadata{
				Name: "BB", Category: "volatility", Description: "bollinger bands",
				Parameters: []string{"window", "multiplier"},
				Defaults:   itoa(indicator.DefaultBOLLWindow, indicator.DefaultBOLLMultiplier),
			},
			factory: func(ar num.Arithmetic[T], params []string) (Runner[T], error) {
				w, err := parseWindows(params[:1])
				if err != nil {
					return nil, err
				}

				multiplier, err := ar.Parse(params[1])
				if err != nil {
					return nil, errors.Wrapf(ErrMalformedLabel, "multiplier %q: %v", params[1], err)
				}

				inc, err := indicator.NewBOLL(ar, w[0], multiplier)
				if err != nil {
					return nil, err
				}
				return bollRunner(ar, inc), nil
			},
		},
		windowed(Metadata{
			Name: "ER", Category: "trend", Description: "kaufman efficiency ratio",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultERWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewER(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "ROC", Category: "momentum", Description: "rate of change in percent",
			Parameters: []string{"window"}, Defaults: itoa(indicator.DefaultROCWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewROC(ar, w[0])
			if err != nil {
				return nil, err
			}
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "OBV", Category: "volume", Description: "on-balance volume",
		}, func(ar num.Arithmetic[T], _ []int) (Runner[T], error) {
			inc := indicator.NewOBV(ar)
			return scalar(ar, inc, func(b *types.Bar[T]) T { return inc.UpdateK(b) }), nil
		}),
		windowed(Metadata{
			Name: "HA", Category: "price", Description: "heikin ashi candles",
		}, func(ar num.Arithmetic[T], _ []int) (Runner[T], error) {
			return heikinAshiRunner(ar, indicator.NewHeikinAshi(ar)), nil
		}),
		windowed(Metadata{
			Name: "ICHIMOKU", Category: "trend", Description: "ichimoku kinko hyo",
			Parameters: []string{"tenkan", "kijun", "senkou_b"},
			Defaults: itoa(indicator.DefaultIchimokuTenkanWindow, indicator.DefaultIchimokuKijunWindow,
				indicator.DefaultIchimokuSenkouBWindow),
		}, func(ar num.Arithmetic[T], w []int) (Runner[T], error) {
			inc, err := indicator.NewIchimoku(ar, w[0], w[1], w[2])
			if err != nil {
				return nil, err
			}
			return ichimokuRunner(ar, inc), nil
		}),
	}
}
