package csvsource

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/num"
)

func TestReadBarsFromCSV_Directory(t *testing.T) {
	bars, err := ReadBarsFromCSV(num.Float64, "testdata/binance", time.Hour)
	require.NoError(t, err)
	require.Len(t, bars, 5)

	for i := 1; i < len(bars); i++ {
		assert.True(t, bars[i].StartTime.After(bars[i-1].StartTime))
	}
	assert.Equal(t, 36710.0, bars[4].GetClose())
}

func TestReadBarsFromCSVWithDecoder_File(t *testing.T) {
	bars, err := ReadBarsFromCSVWithDecoder(num.Float64, "testdata/ohlcv.csv", 24*time.Hour, NewOHLCVCSVBarReader[float64])
	require.NoError(t, err)
	require.Len(t, bars, 3)
	assert.Equal(t, 11.5, bars[2].GetClose())
}

func TestNewReader(t *testing.T) {
	f, err := os.Open("testdata/metatrader.csv")
	require.NoError(t, err)
	defer f.Close()

	reader, err := NewReader(num.Float64, FormatMetaTrader, f)
	require.NoError(t, err)

	bars, err := reader.ReadAll(time.Hour)
	require.NoError(t, err)
	assert.Len(t, bars, 2)
}

func TestReadBarsFromCSV_Missing(t *testing.T) {
	_, err := ReadBarsFromCSV(num.Float64, "testdata/nope", time.Hour)
	assert.Error(t, err)
}
