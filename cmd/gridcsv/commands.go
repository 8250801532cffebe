// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridcsv/csvio"
	"github.com/katalvlaran/gridcsv/fields"
	"github.com/katalvlaran/gridcsv/internal/config"
	"github.com/katalvlaran/gridcsv/internal/report"
)

// shapeFlags registers --rows and --cols on cmd.
func shapeFlags(cmd *cobra.Command, rows, cols *int) {
	cmd.Flags().IntVar(rows, "rows", -1, "expected row count (with --cols selects fixed mode)")
	cmd.Flags().IntVar(cols, "cols", -1, "expected column count (with --rows selects fixed mode)")
}

func (a *app) runner() (runner, error) {
	kind, err := fields.Lookup(a.cfg.Element)
	if err != nil {
		return nil, err
	}
	return runnerFor(kind)
}

func newReadCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		output     string
		values     bool
	)
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Decode a CSV file into an array and report its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			r, err := a.runner()
			if err != nil {
				return err
			}
			rep, err := r.read(a, source{path: args[0], rows: rows, cols: cols, stdin: cmd.InOrStdin()}, values)
			if err != nil {
				return err
			}
			return report.Encode(cmd.OutOrStdout(), format, rep)
		},
	}
	shapeFlags(cmd, &rows, &cols)
	cmd.Flags().StringVarP(&output, "output", "o", report.FormatText, "report format: text, json or yaml")
	cmd.Flags().BoolVar(&values, "print", false, "include the decoded values in the report")

	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		rows, cols   int
		outDelimiter string
	)
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Decode a CSV file into an array and write it back out",
		Long: `convert validates the input as a dense array (fixed or dynamic shape),
then writes it with the output settings, e.g. to change delimiter or
compression, or to normalize number formatting.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.CSV.WriterOptions()
			if outDelimiter != "" {
				comma, err := parseDelimiter(outDelimiter, a.cfg.CSV.Quote[0])
				if err != nil {
					return err
				}
				opts = append(opts, csvio.WithComma(comma))
			}
			r, err := a.runner()
			if err != nil {
				return err
			}
			return r.convert(a,
				source{path: args[0], rows: rows, cols: cols, stdin: cmd.InOrStdin()},
				sink{path: args[1], opts: opts, stream: a.cfg.OutputOptions(), stdout: cmd.OutOrStdout()})
		},
	}
	shapeFlags(cmd, &rows, &cols)
	cmd.Flags().StringVar(&outDelimiter, "out-delimiter", "", `output delimiter (default: input delimiter; escapes such as '\t' allowed)`)
	cmd.Flags().Bool("crlf", false, "terminate output records with \\r\\n")
	cmd.Flags().Bool("always-quote", false, "quote every output field")
	cmd.Flags().String("compression", "", "output compression: none, gzip, zstd, s2 or lz4 (default: from the output extension)")
	bindFlags(a.v, cmd, map[string]string{
		"csv.crlf":         "crlf",
		"csv.always_quote": "always-quote",
		"compression":      "compression",
	}, false)

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gridcsv configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save <file>",
		Short: "Write the effective configuration (file, environment and flags) as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], a.cfg); err != nil {
				return err
			}
			a.logger.Info("configuration saved", zap.String("path", args[0]))
			return nil
		},
	})

	return cmd
}

// parseDelimiter accepts a single byte or a Go escape such as \t.
func parseDelimiter(s string, quote byte) (byte, error) {
	if len(s) > 1 {
		if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
			s = u
		}
	}
	if len(s) != 1 || s[0] == '\n' || s[0] == '\r' || s[0] == quote {
		return 0, fmt.Errorf("invalid delimiter %q: want a single byte other than quote or line break", s)
	}

	return s[0], nil
}
