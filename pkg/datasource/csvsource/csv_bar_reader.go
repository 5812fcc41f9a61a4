package csvsource

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/types"
)

// BarReader is an interface for reading candlesticks.
type BarReader[T any] interface {
	Read(interval time.Duration) (*types.Bar[T], error)
	ReadAll(interval time.Duration) ([]*types.Bar[T], error)
}

var _ BarReader[float64] = (*CSVBarReader[float64])(nil)

// CSVBarReader is a BarReader that reads from a CSV file.
type CSVBarReader[T any] struct {
	csv        *csv.Reader
	ar         num.Arithmetic[T]
	decoder    CSVBarDecoder[T]
	skipHeader bool
}

// MakeCSVBarReader is a factory method type that creates a new CSVBarReader.
type MakeCSVBarReader[T any] func(ar num.Arithmetic[T], csv *csv.Reader) *CSVBarReader[T]

// NewCSVBarReader creates a new CSVBarReader with the default Binance decoder.
func NewCSVBarReader[T any](ar num.Arithmetic[T], csv *csv.Reader) *CSVBarReader[T] {
	return NewCSVBarReaderWithDecoder(ar, csv, BinanceCSVBarDecoder[T])
}

// NewCSVBarReaderWithDecoder creates a new CSVBarReader with the given decoder.
func NewCSVBarReaderWithDecoder[T any](ar num.Arithmetic[T], csv *csv.Reader, decoder CSVBarDecoder[T]) *CSVBarReader[T] {
	return &CSVBarReader[T]{
		csv:     csv,
		ar:      ar,
		decoder: decoder,
	}
}

// NewBinanceCSVBarReader creates a new CSVBarReader for Binance CSV files.
func NewBinanceCSVBarReader[T any](ar num.Arithmetic[T], csv *csv.Reader) *CSVBarReader[T] {
	return NewCSVBarReaderWithDecoder(ar, csv, BinanceCSVBarDecoder[T])
}

// NewMetaTraderCSVBarReader creates a new CSVBarReader for MetaTrader CSV files.
func NewMetaTraderCSVBarReader[T any](ar num.Arithmetic[T], csv *csv.Reader) *CSVBarReader[T] {
	csv.Comma = ';'
	return NewCSVBarReaderWithDecoder(ar, csv, MetaTraderCSVBarDecoder[T])
}

// NewOHLCVCSVBarReader creates a new CSVBarReader for files with a
// time,open,high,low,close,volume header line.
func NewOHLCVCSVBarReader[T any](ar num.Arithmetic[T], csv *csv.Reader) *CSVBarReader[T] {
	r := NewCSVBarReaderWithDecoder(ar, csv, OHLCVCSVBarDecoder[T])
	r.skipHeader = true
	return r
}

// Read reads the next Bar from the underlying CSV data.
func (r *CSVBarReader[T]) Read(interval time.Duration) (*types.Bar[T], error) {
	if r.skipHeader {
		r.skipHeader = false
		if _, err := r.csv.Read(); err != nil {
			return nil, err
		}
	}

	rec, err := r.csv.Read()
	if err != nil {
		return nil, err
	}

	return r.decoder(r.ar, rec, interval)
}

// ReadAll reads all the Bars from the underlying CSV data.
func (r *CSVBarReader[T]) ReadAll(interval time.Duration) ([]*types.Bar[T], error) {
	var bars []*types.Bar[T]
	for {
		b, err := r.Read(interval)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	return bars, nil
}
