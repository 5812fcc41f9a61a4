package csvsource

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVBarDecoder is an extension point for CSVBarReader to support custom file formats.
type CSVBarDecoder[T any] func(ar num.Arithmetic[T], record []string, interval time.Duration) (*types.Bar[T], error)

// buildBar parses the OHLC columns and the optional volume column.
func buildBar[T any](ar num.Arithmetic[T], start time.Time, interval time.Duration, ohlc []string, volume string) (*types.Bar[T], error) {
	b := types.NewBarBuilder(ar).Time(start, start.Add(interval))

	setters := []func(T) *types.BarBuilder[T]{b.Open, b.High, b.Low, b.Close}
	for i, s := range ohlc {
		v, err := ar.Parse(s)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidPriceFormat, "%q", s)
		}
		setters[i](v)
	}

	if volume == "" {
		b.Volume(ar.Zero())
	} else {
		v, err := ar.Parse(volume)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidVolumeFormat, "%q", volume)
		}
		b.Volume(v)
	}

	return b.Build()
}

func column(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// BinanceCSVBarDecoder decodes a CSV record from Binance or Bybit into a Bar.
// The columns are open time in unix milliseconds, open, high, low, close and an optional volume.
func BinanceCSVBarDecoder[T any](ar num.Arithmetic[T], record []string, interval time.Duration) (*types.Bar[T], error) {
	if len(record) < 5 {
		return nil, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTimeFormat, "%q", record[0])
	}

	return buildBar(ar, time.UnixMilli(msec).UTC(), interval, record[1:5], column(record, 5))
}

// MetaTraderCSVBarDecoder decodes a CSV record from MetaTrader into a Bar.
func MetaTraderCSVBarDecoder[T any](ar num.Arithmetic[T], record []string, interval time.Duration) (*types.Bar[T], error) {
	if len(record) < 6 {
		return nil, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTimeFormat, "%q", tStr)
	}

	return buildBar(ar, t, interval, record[2:6], column(record, 6))
}

// OHLCVCSVBarDecoder decodes a generic time,open,high,low,close,volume record.
// The time is either RFC3339 or unix seconds.
func OHLCVCSVBarDecoder[T any](ar num.Arithmetic[T], record []string, interval time.Duration) (*types.Bar[T], error) {
	if len(record) < 5 {
		return nil, ErrNotEnoughColumns
	}

	t, err := parseTime(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTimeFormat, "%q", record[0])
	}

	return buildBar(ar, t, interval, record[1:5], column(record, 5))
}

func parseTime(s string) (time.Time, error) {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}
