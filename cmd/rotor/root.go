package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rotor-lang/rotor/internal/config"
	"github.com/rotor-lang/rotor/internal/dump"
	"github.com/rotor-lang/rotor/internal/logging"
	"github.com/rotor-lang/rotor/internal/rotor"
)

// diagnosticsError is returned when the source was processed but the front
// end reported diagnostics. They have already been dumped.
type diagnosticsError struct {
	count int
}

func (err *diagnosticsError) Error() string {
	return fmt.Sprintf("%d diagnostic(s) reported", err.count)
}

type options struct {
	cfgFile string
	format  string
	verbose bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "rotor",
		Short:         "Rotor compiler front end",
		Long:          "rotor scans and parses Rotor source files and dumps the tokens, statements and diagnostics it finds.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "output format, text or yaml (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "lex <file>",
		Short: "Dump the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], opts, out, errOut, func(d *dump.Dumper, src string) (int, error) {
				res := rotor.Scan(src)
				return len(res.Diagnostics), d.Tokens(res)
			})
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "parse <file>",
		Short: "Dump the statements of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], opts, out, errOut, func(d *dump.Dumper, src string) (int, error) {
				res := rotor.Analyze(src)
				return len(res.Diagnostics), d.Statements(res)
			})
		},
	})
	return rootCmd
}

// runFile runs the given front end stage over the file and dumps its output.
// Text diagnostics are written to errOut.
func runFile(
	fpath string,
	opts *options,
	out, errOut io.Writer,
	stage func(d *dump.Dumper, src string) (int, error),
) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Dump.Format = opts.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	bytes, err := os.ReadFile(fpath)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}
	logger.Debug("running front end", zap.String("file", fpath), zap.Int("bytes", len(bytes)))

	reporter := rotor.NewWriterReporter(errOut)
	count, err := stage(dump.New(out, reporter, cfg.Dump), string(bytes))
	if err != nil {
		return fmt.Errorf("dumping %s: %w", fpath, err)
	}
	if count != 0 {
		logger.Info("diagnostics reported", zap.String("file", fpath), zap.Int("count", count))
		return &diagnosticsError{count}
	}
	return nil
}
