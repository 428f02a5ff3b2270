// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package resolver scopes a candidate pool to the executables a flow invokes
// directly.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/slangc/internal/ctxlog"
	"github.com/specialistvlad/slangc/internal/model"
)

var (
	// ErrMissingDependencyPath is returned when an executable declares
	// dependencies and the pool is empty.
	ErrMissingDependencyPath = errors.New("dependencies declared but no dependency path given")
	// ErrInvalidPath is returned when the pool holds a nil entry.
	ErrInvalidPath = errors.New("dependency path contains an invalid entry")
)

// Resolve returns the pool entries whose id exactly matches one of the ids
// exe invokes. References with no match are left out; the validator reports
// them. When several entries share an id the first one wins.
func Resolve(ctx context.Context, exe model.Executable, pool []model.Executable) (map[string]model.Executable, error) {
	if isNil(exe) {
		return nil, fmt.Errorf("resolve: executable is nil")
	}
	logger := ctxlog.FromContext(ctx).With("executable", exe.ID())

	refs := exe.ExecutableDependencies()
	resolved := make(map[string]model.Executable, len(refs))
	if len(refs) == 0 {
		logger.Debug("No dependencies declared.")
		return resolved, nil
	}
	if err := CheckPath(exe, pool); err != nil {
		return nil, err
	}

	byID := make(map[string]model.Executable, len(pool))
	for i, candidate := range pool {
		if _, seen := byID[candidate.ID()]; seen {
			logger.Debug("Ignoring shadowed pool entry.", "id", candidate.ID(), "index", i)
			continue
		}
		byID[candidate.ID()] = candidate
	}

	for _, ref := range refs {
		dep, ok := byID[ref]
		if !ok {
			logger.Debug("Dependency not found in pool.", "ref", ref)
			continue
		}
		resolved[ref] = dep
	}
	logger.Debug("Dependencies resolved.", "declared", len(refs), "resolved", len(resolved))
	return resolved, nil
}

// CheckPath reports ErrMissingDependencyPath when exe declares dependencies
// and pool is empty, and ErrInvalidPath when pool holds a nil entry.
func CheckPath(exe model.Executable, pool []model.Executable) error {
	if isNil(exe) {
		return fmt.Errorf("resolve: executable is nil")
	}
	if len(exe.ExecutableDependencies()) == 0 {
		return nil
	}
	if len(pool) == 0 {
		return fmt.Errorf("resolve %s: %w", exe.ID(), ErrMissingDependencyPath)
	}
	for i, candidate := range pool {
		if isNil(candidate) {
			return fmt.Errorf("resolve %s: entry %d: %w", exe.ID(), i, ErrInvalidPath)
		}
	}
	return nil
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(exe model.Executable) bool {
	switch e := exe.(type) {
	case nil:
		return true
	case *model.Operation:
		return e == nil
	case *model.Flow:
		return e == nil
	default:
		return false
	}
}
