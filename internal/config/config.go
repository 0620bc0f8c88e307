package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the configuration shared by the command-line tools.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Bench BenchConfig `mapstructure:"bench"`
}

// LogConfig controls the slog handler built by the logger package.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
	Output string `mapstructure:"output"` // stdout, stderr or a file path
}

// BenchConfig controls the dsu-bench workloads.
type BenchConfig struct {
	Sizes []int  `mapstructure:"sizes"`
	Ops   int    `mapstructure:"ops"`
	Seed  uint64 `mapstructure:"seed"`
}

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DSU"

// Load reads configuration from defaults, the optional YAML file at path and
// DSU_* environment variables, in increasing order of precedence. Values
// already set on v (for example bound flags) take precedence over all three.
func Load(v *viper.Viper, path string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the tools cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Bench.Ops < 0 {
		return errors.New("bench.ops must not be negative")
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid bench size %d", n)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("bench.sizes", []int{1 << 10, 1 << 16, 1 << 20})
	v.SetDefault("bench.ops", 1_000_000)
	v.SetDefault("bench.seed", 1)
}
