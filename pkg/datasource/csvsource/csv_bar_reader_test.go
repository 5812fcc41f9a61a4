package csvsource

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func TestCSVBarReader_ReadAll(t *testing.T) {
	data := "1609459200000,28.7,28.9,28.7,28.8,1.5\n" +
		"1609462800000,28.8,29.0,28.6,28.9,2.0\n"

	reader := NewCSVBarReader(num.Float64, csv.NewReader(strings.NewReader(data)))
	bars, err := reader.ReadAll(time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, 28.9, bars[1].GetClose())
	assert.Equal(t, 2.0, bars[1].GetVolume())
}

func TestCSVBarReader_ReadAllStopsAtError(t *testing.T) {
	data := "1609459200000,28.7,28.9,28.7,28.8\n" +
		"1609462800000,bad,29.0,28.6,28.9\n"

	reader := NewCSVBarReader(num.Float64, csv.NewReader(strings.NewReader(data)))
	_, err := reader.ReadAll(time.Hour)
	assert.ErrorIs(t, err, ErrInvalidPriceFormat)
}

func TestMetaTraderCSVBarReader(t *testing.T) {
	data := "11/12/2008;16:00;779.527679;780.964756;777.527679;779.964756;5\n"

	reader := NewMetaTraderCSVBarReader(num.Float64, csv.NewReader(strings.NewReader(data)))
	bar, err := reader.Read(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 779.964756, bar.GetClose())
}

func TestOHLCVCSVBarReader_SkipsHeader(t *testing.T) {
	data := "time,open,high,low,close,volume\n" +
		"2024-01-02T00:00:00Z,10,12,9,11,100\n"

	reader := NewOHLCVCSVBarReader(num.Fixed, csv.NewReader(strings.NewReader(data)))
	bars, err := reader.ReadAll(24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, "11", num.Fixed.String(bars[0].GetClose()))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":           FormatBinance,
		"Bybit":      FormatBinance,
		"metatrader": FormatMetaTrader,
		"mt":         FormatMetaTrader,
		" ohlcv ":    FormatOHLCV,
	} {
		got, err := ParseFormat(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("parquet")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
