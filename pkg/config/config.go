package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/streamta/pkg/datasource/csvsource"
	"github.com/c9s/streamta/pkg/num"
	"github.com/c9s/streamta/pkg/registry"
)

type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputCSV   OutputFormat = "csv"
	OutputTSV   OutputFormat = "tsv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Interval accepts the usual duration strings plus the "d" and "w" suffixes of bar intervals.
type Interval time.Duration

func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

func (i Interval) String() string {
	return time.Duration(i).String()
}

func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	for suffix, unit := range map[string]time.Duration{"d": 24 * time.Hour, "w": 7 * 24 * time.Hour} {
		if strings.HasSuffix(s, suffix) {
			n, err := strconv.Atoi(strings.TrimSuffix(s, suffix))
			if err != nil {
				return 0, errors.Wrapf(err, "invalid interval %q", s)
			}
			return Interval(time.Duration(n) * unit), nil
		}
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid interval %q", s)
	}

	return Interval(d), nil
}

func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	v, err := ParseInterval(s)
	if err != nil {
		return err
	}

	*i = v
	return nil
}

type Source struct {
	Path     string   `json:"path" yaml:"path"`
	Format   string   `json:"format" yaml:"format"`
	Interval Interval `json:"interval" yaml:"interval"`
}

type Config struct {
	Numeric    string       `json:"numeric" yaml:"numeric"`
	Source     Source       `json:"source" yaml:"source"`
	Indicators StringSlice  `json:"indicators" yaml:"indicators"`
	Output     OutputFormat `json:"output" yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Numeric: string(num.KindFloat64),
		Source: Source{
			Format:   string(csvsource.FormatBinance),
			Interval: Interval(time.Minute),
		},
		Output: OutputTable,
	}
}

// Load reads the YAML file over the defaults.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return LoadBytes(content)
}

func LoadBytes(content []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrap(err, "yaml parsing error")
	}

	return config, nil
}

// Validate reports every problem of the config at once.
func (c *Config) Validate() error {
	var err error

	if _, e := num.ParseKind(c.Numeric); e != nil {
		err = multierr.Append(err, e)
	}

	if c.Source.Path == "" {
		err = multierr.Append(err, errors.Wrap(ErrInvalidConfig, "source.path is required"))
	}

	if _, e := csvsource.ParseFormat(c.Source.Format); e != nil {
		err = multierr.Append(err, e)
	}

	if c.Source.Interval < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "negative source.interval %s", c.Source.Interval))
	}

	if len(c.Indicators) == 0 {
		err = multierr.Append(err, errors.Wrap(ErrInvalidConfig, "at least one indicator is required"))
	}

	// labels are checked against float64, the parameters do not depend on the numeric kind
	reg := registry.New(num.Float64)
	for _, label := range c.Indicators {
		if _, e := reg.Parse(label); e != nil {
			err = multierr.Append(err, e)
		}
	}

	switch c.Output {
	case OutputTable, OutputCSV, OutputTSV:
	default:
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "unknown output %q", c.Output))
	}

	return err
}
