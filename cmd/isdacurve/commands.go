package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/definition"
	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/metrics"
	"github.com/meenmo/isdacurve/cmd/isdacurve/internal/runner"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	stdout, stderr io.Writer
	configPath     string
	metricsFile    string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "isdacurve",
		Short:         "Calibrate ISDA standard model discount and credit curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q", args[0])
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return usagef("missing command")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with calibration and log settings")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")

	root.AddCommand(a.discountCommand(), a.creditCommand(), a.batchCommand(), versionCommand())
	return root
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unexpected argument %q", args[0])
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) (settings, *runner.Runner, *metrics.Recorder, error) {
	s, err := loadSettings(cmd, a.configPath)
	if err != nil {
		return settings{}, nil, nil, err
	}
	logger, err := newLogger(a.stderr, s.Log)
	if err != nil {
		return settings{}, nil, nil, usageError{err: err}
	}
	var rec *metrics.Recorder
	if a.metricsFile != "" {
		rec = metrics.New()
	}
	r, err := runner.New(s.Calibration, runner.WithLogger(logger), runner.WithMetrics(rec))
	if err != nil {
		return settings{}, nil, nil, err
	}
	return s, r, rec, nil
}

// writeMetrics exports rec whether or not the calibration succeeded.
func (a *app) writeMetrics(rec *metrics.Recorder, err error) error {
	if werr := rec.WriteFile(a.metricsFile); werr != nil {
		return errors.Join(err, fmt.Errorf("write metrics: %w", werr))
	}
	return err
}

func (a *app) discountCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "discount -f curve.yaml",
		Short: "Calibrate one discount curve",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usagef("discount: -f is required")
			}
			_, r, rec, err := a.setup(cmd)
			if err != nil {
				return err
			}
			doc, err := definition.Load(file)
			if err != nil {
				return err
			}
			if doc.Discount == nil {
				return fmt.Errorf("%s: %w: want a discount document, got %s", file, definition.ErrInvalidDefinition, doc.Kind)
			}
			out, err := r.Discount(doc.Discount)
			if err := a.writeMetrics(rec, err); err != nil {
				return err
			}
			return runner.WriteJSON(a.stdout, out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "discount curve definition")
	return cmd
}

func (a *app) creditCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "credit -f credit.yaml",
		Short: "Calibrate a credit curve and the discount curve it names",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usagef("credit: -f is required")
			}
			_, r, rec, err := a.setup(cmd)
			if err != nil {
				return err
			}
			doc, err := definition.Load(file)
			if err != nil {
				return err
			}
			if doc.Credit == nil {
				return fmt.Errorf("%s: %w: want a credit document, got %s", file, definition.ErrInvalidDefinition, doc.Kind)
			}
			out, err := r.Credit(doc.Credit)
			if err := a.writeMetrics(rec, err); err != nil {
				return err
			}
			return runner.WriteJSON(a.stdout, out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "credit curve definition")
	return cmd
}

func (a *app) batchCommand() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "batch -f a.yaml -f b.yaml [--parallel n]",
		Short: "Calibrate many definitions concurrently",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(files) == 0 {
				return usagef("batch: at least one -f is required")
			}
			s, r, rec, err := a.setup(cmd)
			if err != nil {
				return err
			}
			if s.Parallel < 0 {
				return usagef("batch: --parallel must not be negative, got %d", s.Parallel)
			}
			docs := make([]definition.Document, len(files))
			for i, f := range files {
				if docs[i], err = definition.Load(f); err != nil {
					return err
				}
			}
			out, err := r.Batch(cmd.Context(), docs, s.Parallel)
			if err := a.writeMetrics(rec, err); err != nil {
				return err
			}
			return runner.WriteJSON(a.stdout, out)
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "curve definition, repeatable")
	cmd.Flags().Int("parallel", 4, "maximum concurrent calibrations, 0 for no limit")
	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "isdacurve", version)
		},
	}
}
