package csvsource

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/streamta/pkg/num"
)

// Format names a supported CSV layout.
type Format string

const (
	FormatBinance    Format = "binance"
	FormatMetaTrader Format = "metatrader"
	FormatOHLCV      Format = "ohlcv"
)

var ErrUnknownFormat = errors.New("unknown csv format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatBinance, "bybit":
		return FormatBinance, nil
	case FormatMetaTrader, "mt":
		return FormatMetaTrader, nil
	case FormatOHLCV:
		return f, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// NewReader returns the CSVBarReader of the given format over r.
func NewReader[T any](ar num.Arithmetic[T], format Format, r io.Reader) (*CSVBarReader[T], error) {
	maker, err := Maker[T](format)
	if err != nil {
		return nil, err
	}

	return maker(ar, csv.NewReader(r)), nil
}

func Maker[T any](format Format) (MakeCSVBarReader[T], error) {
	switch format {
	case FormatBinance:
		return NewBinanceCSVBarReader[T], nil
	case FormatMetaTrader:
		return NewMetaTraderCSVBarReader[T], nil
	case FormatOHLCV:
		return NewOHLCVCSVBarReader[T], nil
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}
