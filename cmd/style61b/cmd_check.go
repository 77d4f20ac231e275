package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/format"
	"github.com/dhamidi/style61b/java/codebase"
	"github.com/dhamidi/style61b/store"
)

type checkOptions struct {
	configPath       string
	suppressionsPath string
	format           string
	color            string
	watch            bool
	record           string
	workers          int
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Long: `Check that every method and constructor in the given Java files
documents its parameters, return value and thrown exceptions.

Directories are searched recursively for .java files. The exit status is
1 when a diagnostic of severity error was reported and 2 when a file
could not be read or the arguments were invalid.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError("no files or directories given")
			}
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.yaml, .toml or checkstyle .xml)")
	cmd.Flags().StringVarP(&opts.suppressionsPath, "suppressions", "s", "", "suppressions file (checkstyle .xml, .yaml or .toml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "plain", "output format: "+strings.Join(format.Formats, ", "))
	cmd.Flags().StringVar(&opts.color, "color", string(format.ColorAuto), "colour plain output: auto, always or never")
	cmd.Flags().Lookup("color").NoOptDefVal = string(format.ColorAlways)
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "keep running and re-check files as they change")
	cmd.Flags().StringVar(&opts.record, "record", "", "record the run in this SQLite database")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "files parsed and checked in parallel (default: number of CPUs)")

	return cmd
}

func runCheck(cmd *cobra.Command, opts checkOptions, paths []string) error {
	cfg, err := loadConfig(opts.configPath, opts.suppressionsPath)
	if err != nil {
		return usageError("%w", err)
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	engine, cbOpts, err := codebase.EngineFromConfig(cfg)
	if err != nil {
		return usageError("%w", err)
	}

	severity := cfg.SeverityOrDefault()
	enc, err := format.New(opts.format, cmd.OutOrStdout(), format.Options{
		Severity: severity,
		Color:    format.ColorMode(opts.color),
	})
	if err != nil {
		return usageError("%w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startedAt := time.Now()
	c := codebase.New(engine, cbOpts...)
	if err := c.Load(ctx, paths); err != nil {
		return usageError("%w", err)
	}
	results, err := c.CheckAll(ctx)
	if err != nil {
		return usageError("%w", err)
	}
	if err := enc.Encode(results); err != nil {
		return usageError("write report: %w", err)
	}

	diagnostics, failed := codebase.Count(results)
	log.Infof("checked %d files: %d diagnostics, %d failed", len(results), diagnostics, failed)

	if opts.record != "" {
		if err := recordRun(ctx, opts.record, startedAt, results); err != nil {
			return usageError("record run: %w", err)
		}
	}

	if opts.watch {
		return watch(ctx, c, enc, paths)
	}

	switch {
	case failed > 0:
		return &exitError{code: 2}
	case diagnostics > 0 && severity == config.SeverityError:
		return &exitError{code: 1}
	}
	return nil
}

func recordRun(ctx context.Context, path string, startedAt time.Time, results []codebase.Result) error {
	s, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.RecordRun(ctx, startedAt, results)
	if err != nil {
		return err
	}
	log.Infof("recorded run %d in %s", run.ID, path)
	return nil
}

func watch(ctx context.Context, c *codebase.Codebase, enc format.Encoder, paths []string) error {
	w, err := codebase.NewFileWatcher(c, func(results []codebase.Result) {
		if err := enc.Encode(results); err != nil {
			log.Errorf("write report: %s", err)
		}
	})
	if err != nil {
		return usageError("watch: %w", err)
	}
	if err := w.Add(paths...); err != nil {
		return usageError("watch: %w", err)
	}
	log.Infof("watching %s", strings.Join(paths, ", "))
	return w.Run(ctx)
}
