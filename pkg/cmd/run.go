package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/datasource/csvsource"
	"github.com/c9s/streamta/pkg/envvar"
	"github.com/c9s/streamta/pkg/metrics"
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/registry"
)

func init() {
	RunFlags(RunCmd.Flags())
	RootCmd.AddCommand(RunCmd)
}

type RunOptions struct {
	Progress bool
	Metrics  bool
}

var RunCmd = &cobra.Command{
	Use:          "run [csv path]",
	Short:        "stream bars through the configured indicators",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig(cmd.Flags(), args)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		opts := RunOptions{Progress: viper.GetBool("progress")}
		if bind := viper.GetString("metrics-bind"); bind != "" {
			srv := metrics.NewServer(bind)
			srv.Start()
			defer func() {
				if err := srv.Shutdown(context.Background()); err != nil {
					log.WithError(err).Error("metrics server shutdown error")
				}
			}()
			opts.Metrics = true
		}

		return Run(ctx, cfg, cmd.OutOrStdout(), opts)
	},
}

// loadRunConfig merges the config file, the flags and the STREAMTA_* variables.
func loadRunConfig(flags *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg := config.Default()
	if configFile := viper.GetString("config"); configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, errors.Wrapf(err, "can not load config file %s", configFile)
		}
	}

	if v := viper.GetString("numeric"); v != "" {
		cfg.Numeric = v
	}
	if v := viper.GetString("output"); v != "" {
		cfg.Output = config.OutputFormat(v)
	}
	if v := viper.GetString("source"); v != "" {
		cfg.Source.Path = v
	}
	if len(args) > 0 {
		cfg.Source.Path = args[0]
	}
	if v := viper.GetString("format"); v != "" {
		cfg.Source.Format = v
	}
	if v := viper.GetString("interval"); v != "" {
		interval, err := config.ParseInterval(v)
		if err != nil {
			return nil, err
		}
		cfg.Source.Interval = interval
	}

	labels, err := indicatorLabels(flags)
	if err != nil {
		return nil, err
	}
	if len(labels) > 0 {
		cfg.Indicators = labels
	}

	return cfg, cfg.Validate()
}

// indicatorLabels prefers the --indicator flags over STREAMTA_INDICATOR.
// The variable is split like a shell command line, so labels with spaces or
// parentheses are quoted: STREAMTA_INDICATOR='"MACD(12, 26, 9)" "EMA(9)" OBV'.
func indicatorLabels(flags *pflag.FlagSet) ([]string, error) {
	if flags.Changed("indicator") {
		return flags.GetStringArray("indicator")
	}

	env, ok := envvar.String(envvar.Key("INDICATOR"))
	if !ok {
		return nil, nil
	}

	labels, err := shellwords.Parse(env)
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse %s=%q", envvar.Key("INDICATOR"), env)
	}

	return labels, nil
}

// Run streams every bar of the configured source through the indicators and writes one row per bar.
func Run(ctx context.Context, cfg *config.Config, w io.Writer, opts RunOptions) error {
	kind, err := num.ParseKind(cfg.Numeric)
	if err != nil {
		return err
	}

	switch kind {
	case num.KindFloat32:
		return stream(ctx, num.Float32, cfg, w, opts)
	case num.KindFixed:
		return stream(ctx, num.Fixed, cfg, w, opts)
	case num.KindDecimal:
		return stream(ctx, num.Decimal, cfg, w, opts)
	default:
		return stream(ctx, num.Float64, cfg, w, opts)
	}
}

func stream[T any](ctx context.Context, ar num.Arithmetic[T], cfg *config.Config, w io.Writer, opts RunOptions) error {
	runners, err := registry.New(ar).ParseAll(cfg.Indicators)
	if err != nil {
		return err
	}

	if opts.Metrics {
		for i, r := range runners {
			runners[i] = metrics.Instrument(r)
		}
	}

	format, err := csvsource.ParseFormat(cfg.Source.Format)
	if err != nil {
		return err
	}

	files, err := csvsource.CSVFiles(cfg.Source.Path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no csv file found in %s", cfg.Source.Path)
	}

	header := []string{"time", "close"}
	for _, r := range runners {
		header = append(header, r.Columns()...)
	}

	out, err := newRowWriter(cfg.Output, w, header)
	if err != nil {
		return err
	}

	s := &streamer[T]{
		ar:       ar,
		format:   format,
		interval: cfg.Source.Interval.Duration(),
		runners:  runners,
		out:      out,
		progress: opts.Progress,
	}

	for _, file := range files {
		log.Debugf("streaming %s", file)
		if err := s.streamFile(ctx, file); err != nil {
			return errors.Wrapf(err, "%s", file)
		}
	}

	log.Debugf("streamed %d bars", s.count)
	return out.Flush()
}

type streamer[T any] struct {
	ar       num.Arithmetic[T]
	format   csvsource.Format
	interval time.Duration
	runners  []registry.Runner[T]
	out      rowWriter
	progress bool
	count    int
}

func (s *streamer[T]) streamFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	//nolint:errcheck // Read ops only so safe to ignore err return
	defer f.Close()

	var r io.Reader = f
	if s.progress {
		info, err := f.Stat()
		if err != nil {
			return err
		}

		bar := pb.Full.Start64(info.Size())
		bar.SetWriter(os.Stderr)
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	reader, err := csvsource.NewReader(s.ar, s.format, r)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		bar, err := reader.Read(s.interval)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "bar #%d", s.count+1)
		}

		metrics.BarsTotalMetrics.Inc()
		s.count++

		row := []string{bar.StartTime.Format(time.RFC3339), s.ar.String(bar.GetClose())}
		for _, runner := range s.runners {
			row = append(row, runner.Push(bar)...)
		}

		if err := s.out.Append(row); err != nil {
			return err
		}
	}
}
