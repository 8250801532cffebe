// SPDX-License-Identifier: MIT

// Package config holds the gridcsv command configuration.
//
// Values are layered by viper: built-in defaults, then an optional config
// file (YAML, JSON or TOML), then GRIDCSV_* environment variables, then
// bound command-line flags. Save writes a configuration back as YAML.
//
// Example:
//
//	v := viper.New()
//	v.SetConfigFile("gridcsv.yaml")
//	cfg, err := config.Load(v)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/fields"
	"github.com/katalvlaran/gridcsv/internal/logging"
	"github.com/katalvlaran/gridcsv/stream"
)

// EnvPrefix prefixes environment overrides: csv.delimiter is GRIDCSV_CSV_DELIMITER.
const EnvPrefix = "GRIDCSV"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete command configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log" yaml:"log"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
	Element  string         `mapstructure:"element" yaml:"element"`     // fields.Lookup name
	MaxBytes int64          `mapstructure:"max_bytes" yaml:"max_bytes"` // 0 = unlimited
	Metrics  bool           `mapstructure:"metrics" yaml:"metrics"`

	// Compression forces the output codec (stream.ParseCompression name);
	// empty selects it from the output file extension.
	Compression string `mapstructure:"compression" yaml:"compression"`
}

// CSVConfig configures the record codec and the array reader.
type CSVConfig struct {
	Delimiter   string `mapstructure:"delimiter" yaml:"delimiter"`
	Quote       string `mapstructure:"quote" yaml:"quote"`
	CRLF        bool   `mapstructure:"crlf" yaml:"crlf"`
	AlwaysQuote bool   `mapstructure:"always_quote" yaml:"always_quote"`
	SkipHeader  bool   `mapstructure:"skip_header" yaml:"skip_header"`
	TrimSpace   bool   `mapstructure:"trim_space" yaml:"trim_space"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		CSV: CSVConfig{
			Delimiter: ",",
			Quote:     `"`,
		},
		Element: fields.Float64.String(),
	}
}

// Validate reports the first invalid setting, wrapped around ErrInvalid.
func (c Config) Validate() error {
	if err := c.CSV.validate(); err != nil {
		return err
	}
	if _, err := fields.Lookup(c.Element); err != nil {
		return fmt.Errorf("%w: element: %w", ErrInvalid, err)
	}
	if c.Compression != "" {
		if _, err := stream.ParseCompression(c.Compression); err != nil {
			return fmt.Errorf("%w: compression: %w", ErrInvalid, err)
		}
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("%w: max_bytes must be >= 0, got %d", ErrInvalid, c.MaxBytes)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.encoding must be console or json, got %q", ErrInvalid, c.Log.Encoding)
	}

	return nil
}

func (c CSVConfig) validate() error {
	for name, v := range map[string]string{"delimiter": c.Delimiter, "quote": c.Quote} {
		if len(v) != 1 {
			return fmt.Errorf("%w: csv.%s must be a single byte, got %q", ErrInvalid, name, v)
		}
		if v == "\r" || v == "\n" {
			return fmt.Errorf("%w: csv.%s must not be a line break", ErrInvalid, name)
		}
	}
	if c.Delimiter == c.Quote {
		return fmt.Errorf("%w: csv.delimiter and csv.quote must differ", ErrInvalid)
	}

	return nil
}

// OutputOptions returns the stream options for the convert output. Call after Validate.
func (c Config) OutputOptions() []stream.Option {
	if c.Compression == "" {
		return nil
	}
	comp, _ := stream.ParseCompression(c.Compression)

	return []stream.Option{stream.WithCompression(comp)}
}

// ReaderOptions returns the csvio options for sources. Call after Validate.
func (c CSVConfig) ReaderOptions() []csvio.Option {
	return []csvio.Option{
		csvio.WithComma(c.Delimiter[0]),
		csvio.WithQuote(c.Quote[0]),
		csvio.WithReuseRecord(),
	}
}

// WriterOptions returns the csvio options for sinks. Call after Validate.
func (c CSVConfig) WriterOptions() []csvio.Option {
	opts := []csvio.Option{csvio.WithComma(c.Delimiter[0]), csvio.WithQuote(c.Quote[0])}
	if c.CRLF {
		opts = append(opts, csvio.WithCRLF())
	}
	if c.AlwaysQuote {
		opts = append(opts, csvio.WithAlwaysQuote())
	}

	return opts
}

// ArrayOptions returns the csvarray reader options.
func (c CSVConfig) ArrayOptions() []csvarray.Option {
	var opts []csvarray.Option
	if c.SkipHeader {
		opts = append(opts, csvarray.WithSkipHeader())
	}
	if c.TrimSpace {
		opts = append(opts, csvarray.WithTrimSpace())
	}

	return opts
}

// Load layers defaults, the config file set on v (if any), environment and
// bound flags, then validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SetDefaults registers every key of cfg on v. Viper only resolves
// environment variables for keys it knows about.
func SetDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.encoding", cfg.Log.Encoding)
	v.SetDefault("log.output_paths", cfg.Log.OutputPaths)
	v.SetDefault("csv.delimiter", cfg.CSV.Delimiter)
	v.SetDefault("csv.quote", cfg.CSV.Quote)
	v.SetDefault("csv.crlf", cfg.CSV.CRLF)
	v.SetDefault("csv.always_quote", cfg.CSV.AlwaysQuote)
	v.SetDefault("csv.skip_header", cfg.CSV.SkipHeader)
	v.SetDefault("csv.trim_space", cfg.CSV.TrimSpace)
	v.SetDefault("element", cfg.Element)
	v.SetDefault("max_bytes", cfg.MaxBytes)
	v.SetDefault("metrics", cfg.Metrics)
	v.SetDefault("compression", cfg.Compression)
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
