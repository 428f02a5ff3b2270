// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclsource

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/slangc/internal/ctxlog"
	"github.com/specialistvlad/slangc/internal/fsutil"
	"github.com/specialistvlad/slangc/internal/metadata"
	"github.com/specialistvlad/slangc/internal/model"
)

// Extension is the file suffix of source files.
const Extension = ".sl.hcl"

// Loader reads executables from source files.
type Loader struct{}

// NewLoader creates a new source loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every source file found under paths, which may be files or
// directories, in sorted path order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]model.Executable, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Source loader started.", "path_count", len(paths))

	files, err := fsutil.FindAll(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered source files.", "count", len(files))

	parser := hclparse.NewParser()
	executables := make([]model.Executable, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", file, err)
		}
		exe, err := l.parse(ctx, parser, file, src)
		if err != nil {
			return nil, err
		}
		executables = append(executables, exe)
	}

	logger.Debug("Source loading complete.", "executables", len(executables))
	return executables, nil
}

// LoadFile reads the single executable declared in path.
func (l *Loader) LoadFile(ctx context.Context, path string) (model.Executable, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}
	return l.LoadSource(ctx, path, src)
}

// LoadSource parses src as the content of the file named filename.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (model.Executable, error) {
	return l.parse(ctx, hclparse.NewParser(), filename, src)
}

func (l *Loader) parse(ctx context.Context, parser *hclparse.Parser, filename string, src []byte) (model.Executable, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)

	description, err := metadata.Parse(filename, string(src))
	if err != nil {
		return nil, err
	}

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if n := len(root.Operations) + len(root.Flows); n != 1 {
		return nil, fmt.Errorf("source file %s must declare exactly one operation or flow, found %d", filename, n)
	}

	d := &decoder{
		src:       src,
		filename:  filename,
		namespace: root.Namespace,
		imports:   root.Imports,
	}
	header := model.Header{
		Namespace:   root.Namespace,
		Description: description,
		Source:      model.NewFSInfo(filename),
	}

	var exe model.Executable
	if len(root.Operations) == 1 {
		exe, err = d.operation(header, root.Operations[0])
	} else {
		exe, err = d.flow(header, root.Flows[0])
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Debug("Executable loaded.", "id", exe.ID(), "type", exe.Type(), "tags", description.Len())
	return exe, nil
}

// diagError turns diagnostics into an error anchored at rng.
func diagError(summary, detail string, rng hcl.Range) error {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng.Ptr(),
	}}
}
