package cmd

import "github.com/spf13/pflag"

// RunFlags defines the flags overriding the config file of the run command.
// Each one can also be set with STREAMTA_<FLAG>, dashes replaced by underscores.
func RunFlags(flags *pflag.FlagSet) {
	flags.String("numeric", "", "numeric type: float64, float32, fixed or decimal")
	flags.String("output", "", "output format: table, csv or tsv")
	flags.String("source", "", "csv file or directory of csv files")
	flags.String("format", "", "csv format: binance, metatrader or ohlcv")
	flags.String("interval", "", "bar interval, e.g. 1m, 4h, 1d")
	flags.StringArray("indicator", nil, "indicator label, e.g. \"MACD(12, 26, 9)\", repeatable")
	flags.Bool("progress", false, "show a progress bar while reading the source")
	flags.String("metrics-bind", "", "serve prometheus metrics on this address, e.g. :9090")
}
