// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/specialistvlad/slangc/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// ExitFailure reports a failed compilation or validation.
	ExitFailure = 1
	// ExitUsage reports invalid arguments, flags or configuration.
	ExitUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// options holds the raw values of the global flags.
type options struct {
	classpath  []string
	format     string
	logLevel   string
	logFormat  string
	configPath string
}

// Execute runs the command line args. Documents go to outW, logs and help
// to errW. Every returned error is an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(normalizeArgs(args))

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

// NewRootCommand builds the command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{}
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:   "slangc",
		Short: "Compile workflow definitions into execution plans",
		Long: `slangc compiles operations and flows written in .sl.hcl files into
step-indexed execution plans for a run-time engine.

A target is either a path to a source file or the id of an executable found
on the classpath, e.g. io.demo.greet_all.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(errW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringSliceVar(&opts.classpath, "classpath", nil, "Files or directories searched for dependencies (repeatable, comma-separated; -cp also accepted).")
	flags.StringVarP(&opts.format, "format", "f", defaults.Format, "Output format. Options: 'json' or 'yaml'.")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file. Flags override its values.")

	newApp := func(cmd *cobra.Command) (*app.App, error) {
		cfg, err := opts.config(cmd.Flags())
		if err != nil {
			return nil, err
		}
		return app.NewApp(outW, errW, cfg), nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "compile TARGET",
			Short: "Compile an executable and print its artifact",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd)
				if err != nil {
					return err
				}
				return a.Compile(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "validate TARGET...",
			Short: "Report every structural error of one or more executables",
			Args:  usageArgs(cobra.MinimumNArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd)
				if err != nil {
					return err
				}
				return a.Validate(cmd.Context(), args...)
			},
		},
		&cobra.Command{
			Use:   "describe TARGET",
			Short: "Print the inputs, outputs, results and documentation of an executable",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(cmd)
				if err != nil {
					return err
				}
				return a.Describe(cmd.Context(), args[0])
			},
		},
	)
	return root
}

// config merges the defaults, the config file and the flags set explicitly,
// in that order.
func (o *options) config(flags *pflag.FlagSet) (*app.Config, error) {
	cfg := app.DefaultConfig()
	if o.configPath != "" {
		fromFile, err := app.LoadConfigFile(o.configPath, cfg)
		if err != nil {
			return nil, usageError(err)
		}
		cfg = fromFile
	}

	if flags.Changed("classpath") {
		cfg.Classpath = o.classpath
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	return validated, nil
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// normalizeArgs rewrites the two-letter `-cp` shorthand, which pflag cannot
// declare, into --classpath.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-cp":
			out = append(out, "--classpath")
		case strings.HasPrefix(arg, "-cp="):
			out = append(out, "--classpath="+strings.TrimPrefix(arg, "-cp="))
		default:
			out = append(out, arg)
		}
	}
	return out
}
