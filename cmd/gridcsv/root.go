// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridcsv/csvarray"
	"github.com/katalvlaran/gridcsv/internal/config"
	"github.com/katalvlaran/gridcsv/internal/logging"
	"github.com/katalvlaran/gridcsv/metrics"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v         *viper.Viper
	cfg       config.Config
	logger    *zap.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	var configFile string

	root := &cobra.Command{
		Use:   "gridcsv",
		Short: "Convert between CSV and dense numeric arrays",
		Long: `gridcsv reads CSV record streams into dense row-major numeric arrays,
either into a declared shape (--rows/--cols) or inferring the shape from the
data, and writes arrays back as CSV. Inputs and outputs ending in .gz, .zst,
.s2 or .lz4 are (de)compressed transparently; "-" is stdin/stdout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				a.v.SetConfigFile(configFile)
			}
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = a.logger.Sync() }()
			return a.dumpMetrics(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("delimiter", "", "input field delimiter (single byte)")
	pf.String("type", "", "element type: int, int8..int64, uint, uint8..uint64, float32, float64")
	pf.Bool("skip-header", false, "discard the first record")
	pf.Bool("trim-space", false, "trim white space around fields before parsing")
	pf.Int64("max-bytes", 0, "fail if the decompressed input exceeds this many bytes (0 = unlimited)")
	pf.Bool("metrics", false, "print operation counters to stderr after the command")

	bindFlags(a.v, root, map[string]string{
		"log.level":       "log-level",
		"csv.delimiter":   "delimiter",
		"element":         "type",
		"csv.skip_header": "skip-header",
		"csv.trim_space":  "trim-space",
		"max_bytes":       "max-bytes",
		"metrics":         "metrics",
	}, true)

	root.AddCommand(newReadCmd(a), newConvertCmd(a), newConfigCmd(a), newVersionCmd())

	return root
}

// bindFlags binds viper keys to flags of cmd; persistent selects the flag set.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("gridcsv: bind %s: %v", name, err))
		}
	}
}

// setup loads the configuration and builds the logger and metrics.
func (a *app) setup() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		a.collector = metrics.NewCollector(a.registry)
	}
	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.String("element", cfg.Element),
		zap.Int64("max_bytes", cfg.MaxBytes))

	return nil
}

// arrayOptions returns the csvarray options of the configuration.
func (a *app) arrayOptions() []csvarray.Option {
	opts := append(a.cfg.CSV.ArrayOptions(), csvarray.WithLogger(a.logger))
	if a.collector != nil {
		opts = append(opts, csvarray.WithObserver(a.collector))
	}

	return opts
}

func (a *app) dumpMetrics(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}
	samples, err := metrics.Gather(a.registry)
	if err != nil {
		return err
	}
	for _, s := range samples {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s{%s} %g\n", s.Name, s.Labels, s.Value)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gridcsv v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
