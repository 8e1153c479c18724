// Package config holds the run configuration of the terrapath command.
// Values come, in increasing precedence, from defaults, an optional config
// file, TERRAPATH_* environment variables and command-line flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/terrapath/dijkstra"
)

// EnvPrefix is prepended to every environment variable, e.g. TERRAPATH_MAX_DIMENSION.
const EnvPrefix = "TERRAPATH"

// ErrBadConfig indicates an invalid configuration value.
var ErrBadConfig = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	// MinDimension and MaxDimension bound the grid's rows and columns.
	MinDimension int `mapstructure:"min_dimension"`
	MaxDimension int `mapstructure:"max_dimension"`

	// StepCharge is "edge" (C_cell per move) or "once" (C_cell at the source).
	StepCharge string `mapstructure:"step_charge"`
	// Baseline is the effort of the source cell.
	Baseline uint64 `mapstructure:"baseline"`
	// Verify checks heap invariants after every extraction.
	Verify bool `mapstructure:"verify"`
	// DumpGraph logs the built graph at debug level.
	DumpGraph bool `mapstructure:"dump_graph"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// flag name → config key
var flagKeys = map[string]string{
	"min-dim":     "min_dimension",
	"max-dim":     "max_dimension",
	"step-charge": "step_charge",
	"baseline":    "baseline",
	"verify":      "verify",
	"dump-graph":  "dump_graph",
	"log-level":   "log_level",
	"log-format":  "log_format",
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix(EnvPrefix)
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vi.AutomaticEnv()

	vi.SetDefault("min_dimension", 5)
	vi.SetDefault("max_dimension", 250)
	vi.SetDefault("step_charge", dijkstra.ChargePerEdge.String())
	vi.SetDefault("baseline", 0)
	vi.SetDefault("verify", false)
	vi.SetDefault("dump_graph", false)
	vi.SetDefault("log_level", "info")
	vi.SetDefault("log_format", "console")

	return vi
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("min-dim", 5, "minimum number of grid rows and columns")
	fs.Int("max-dim", 250, "maximum number of grid rows and columns")
	fs.String("step-charge", "edge", `where the per-move cost is charged: "edge" or "once"`)
	fs.Uint64("baseline", 0, "effort of the source cell")
	fs.Bool("verify", false, "check heap invariants after every extraction")
	fs.Bool("dump-graph", false, "log the built graph at debug level")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "console", `log format: "console" or "json"`)
}

// BindFlags binds the flags registered by RegisterFlags to their config keys.
func BindFlags(vi *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := vi.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

// Load reads the optional config file and decodes vi into a validated Config.
func Load(vi *viper.Viper, file string) (*Config, error) {
	if file != "" {
		vi.SetConfigFile(file)
		if err := vi.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	c := &Config{}
	if err := vi.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.MinDimension < 1 || c.MaxDimension < c.MinDimension {
		return errors.Wrapf(ErrBadConfig, "dimension bounds [%d, %d]", c.MinDimension, c.MaxDimension)
	}
	if _, err := c.Charge(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Wrapf(ErrBadConfig, "log_format %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrBadConfig, "log_level %q", c.LogLevel)
	}
	return nil
}

// Charge maps StepCharge to the dijkstra policy.
func (c *Config) Charge() (dijkstra.StepCharge, error) {
	switch strings.ToLower(c.StepCharge) {
	case dijkstra.ChargePerEdge.String():
		return dijkstra.ChargePerEdge, nil
	case dijkstra.ChargeOnce.String():
		return dijkstra.ChargeOnce, nil
	default:
		return 0, errors.Wrapf(ErrBadConfig, "step_charge %q", c.StepCharge)
	}
}
