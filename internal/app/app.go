// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/slangc/internal/compiler"
	"github.com/specialistvlad/slangc/internal/ctxlog"
	"github.com/specialistvlad/slangc/internal/hclsource"
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/render"
)

// ErrValidationFailed is returned by Validate when any target has errors.
// The report itself has already been written.
var ErrValidationFailed = errors.New("validation failed")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	format   render.Format
	loader   *hclsource.Loader
	compiler *compiler.Compiler
}

// NewApp is the constructor for the main application. Documents are written
// to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		format = render.FormatJSON
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		format:   format,
		loader:   hclsource.NewLoader(),
		compiler: compiler.New(),
	}
}

// Compile compiles target against the classpath and writes the artifact.
func (a *App) Compile(ctx context.Context, target string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	exe, pool, err := a.load(ctx, target)
	if err != nil {
		return err
	}

	artifact, err := a.compiler.Compile(ctx, exe, pool)
	if err != nil {
		return err
	}
	a.logger.Info("Compiled.", "executable", exe.ID(), "dependencies", len(artifact.Dependencies))
	return render.Encode(a.outW, a.format, render.Artifact(artifact))
}

// Validate reports every structural error of each target and returns
// ErrValidationFailed when any target has errors.
func (a *App) Validate(ctx context.Context, targets ...string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	reports := make([]render.ValidationReport, 0, len(targets))
	failed := false
	for _, target := range targets {
		exe, pool, err := a.load(ctx, target)
		if err != nil {
			return err
		}
		errs := a.compiler.ValidateWithDependencies(exe, pool)
		a.logger.Debug("Validated.", "executable", exe.ID(), "errors", len(errs))
		if len(errs) > 0 {
			failed = true
		}
		reports = append(reports, render.Validation(exe, errs))
	}

	if err := render.Encode(a.outW, a.format, reports); err != nil {
		return err
	}
	if failed {
		return ErrValidationFailed
	}
	return nil
}

// Describe writes the description of target without compiling it.
func (a *App) Describe(ctx context.Context, target string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	exe, _, err := a.load(ctx, target)
	if err != nil {
		return err
	}
	return render.Encode(a.outW, a.format, render.Describe(exe))
}

// load returns the executable named by target and the classpath pool. A
// target is a path to a source file or the id of an executable on the
// classpath.
func (a *App) load(ctx context.Context, target string) (model.Executable, []model.Executable, error) {
	pool, err := a.loader.Load(ctx, a.config.Classpath...)
	if err != nil {
		return nil, nil, err
	}

	if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
		exe, err := a.loader.LoadFile(ctx, target)
		if err != nil {
			return nil, nil, err
		}
		return exe, pool, nil
	}

	for _, exe := range pool {
		if exe.ID() == target {
			return exe, pool, nil
		}
	}
	return nil, nil, fmt.Errorf("executable %q is neither a source file nor on the classpath", target)
}
