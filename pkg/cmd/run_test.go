package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/datasource/csvsource"
)

func testConfig(numeric string, output config.OutputFormat, indicators ...string) *config.Config {
	cfg := config.Default()
	cfg.Numeric = numeric
	cfg.Output = output
	cfg.Source.Path = "../datasource/csvsource/testdata/binance"
	cfg.Source.Interval = config.Interval(time.Hour)
	cfg.Indicators = indicators
	return cfg
}

func TestRun_CSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("float64", config.OutputCSV, "SMA(2)", "OBV")
	require.NoError(t, cfg.Validate())
	require.NoError(t, Run(context.Background(), cfg, &buf, RunOptions{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{"time", "close", "SMA(2)", "OBV"}, records[0])
	assert.Equal(t, []string{"2023-11-18T00:00:00Z", "36620", "36620", "512.4"}, records[1])
	assert.Equal(t, "36655", records[2][2])
	assert.Equal(t, "36710", records[5][1])
}

func TestRun_MultiColumnIndicators(t *testing.T) {
	for _, numeric := range []string{"float64", "float32", "fixed", "decimal"} {
		t.Run(numeric, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := testConfig(numeric, config.OutputCSV, "MACD(2, 3, 2)", "HA()")
			require.NoError(t, Run(context.Background(), cfg, &buf, RunOptions{Metrics: true}))

			records, err := csv.NewReader(&buf).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 6)
			// time, close, 3 macd columns and 5 heikin ashi columns
			assert.Len(t, records[0], 10)
			assert.Contains(t, []string{"green", "red"}, records[1][9])
		})
	}
}

func TestRun_Table(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("decimal", config.OutputTable, "RSI(3)")
	require.NoError(t, Run(context.Background(), cfg, &buf, RunOptions{}))
	assert.Contains(t, buf.String(), "RSI(3)")
	assert.Contains(t, buf.String(), "2023-11-19T01:00:00Z")
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer

	cfg := testConfig("float64", config.OutputCSV, "NOPE(1)")
	assert.Error(t, Run(context.Background(), cfg, &buf, RunOptions{}))

	cfg = testConfig("bigint", config.OutputCSV, "SMA(2)")
	assert.Error(t, Run(context.Background(), cfg, &buf, RunOptions{}))

	cfg = testConfig("float64", config.OutputCSV, "SMA(2)")
	cfg.Source.Format = "metatrader"
	assert.Error(t, Run(context.Background(), cfg, &buf, RunOptions{}))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	cfg := testConfig("float64", config.OutputCSV, "SMA(2)")
	assert.ErrorIs(t, Run(ctx, cfg, &buf, RunOptions{}), context.Canceled)
}

func TestRun_TSV(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig("float64", config.OutputTSV, "BB(2, 2)")
	require.NoError(t, Run(context.Background(), cfg, &buf, RunOptions{}))

	r := csv.NewReader(&buf)
	r.Comma = '\t'
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "close", "BB(2, 2).average", "BB(2, 2).upper", "BB(2, 2).lower"}, records[0])
}

func TestIndicatorLabels(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
		RunFlags(flags)
		return flags
	}

	t.Run("env", func(t *testing.T) {
		t.Setenv("STREAMTA_INDICATOR", `"MACD(12, 26, 9)" 'BB(20, 2)' OBV`)

		labels, err := indicatorLabels(newFlags())
		require.NoError(t, err)
		assert.Equal(t, []string{"MACD(12, 26, 9)", "BB(20, 2)", "OBV"}, labels)
	})

	t.Run("flags win over env", func(t *testing.T) {
		t.Setenv("STREAMTA_INDICATOR", "OBV")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--indicator", "EMA(3)", "--indicator", "SMA(2)"}))

		labels, err := indicatorLabels(flags)
		require.NoError(t, err)
		assert.Equal(t, []string{"EMA(3)", "SMA(2)"}, labels)
	})

	t.Run("unquoted parenthesis", func(t *testing.T) {
		t.Setenv("STREAMTA_INDICATOR", "EMA(9)")

		_, err := indicatorLabels(newFlags())
		assert.Error(t, err)
	})

	t.Run("unset", func(t *testing.T) {
		labels, err := indicatorLabels(newFlags())
		require.NoError(t, err)
		assert.Empty(t, labels)
	})
}

func TestRun_BadCellInError(t *testing.T) {
	dir := t.TempDir()
	data := "1609459200000,28.7,28.9,28.7,28.8\n1609462800000,bad,29.0,28.6,28.9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bars.csv"), []byte(data), 0644))

	var buf bytes.Buffer
	cfg := testConfig("float64", config.OutputCSV, "SMA(2)")
	cfg.Source.Path = dir

	err := Run(context.Background(), cfg, &buf, RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, csvsource.ErrInvalidPriceFormat)
	assert.Contains(t, err.Error(), "bar #2")
	assert.Contains(t, err.Error(), `"bad"`)
}
