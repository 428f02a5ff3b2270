// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/slangc/internal/model"
)

// UnsupportedExecutableTypeError is returned for an executable that is
// neither an operation nor a flow.
type UnsupportedExecutableTypeError struct {
	Executable string
	Type       model.Type
}

func (e *UnsupportedExecutableTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported executable type %q", e.Executable, e.Type)
}

// UnreachableDependencyError is returned when a task invokes an id missing
// from the resolved dependencies. Validation normally catches this first.
type UnreachableDependencyError struct {
	Executable string
	Task       string
	Ref        string
}

func (e *UnreachableDependencyError) Error() string {
	return fmt.Sprintf("%s: task %q invokes %q, which is not among the resolved dependencies", e.Executable, e.Task, e.Ref)
}

// CyclicDependencyError is returned when executables invoke each other in a
// loop. A flow invoking itself is not a cycle.
type CyclicDependencyError struct {
	Path []string
	Err  error
}

func (e *CyclicDependencyError) Error() string {
	return "cyclic dependency: " + strings.Join(e.Path, " -> ")
}

func (e *CyclicDependencyError) Unwrap() error {
	return e.Err
}

// CompileError wraps any failure of a compilation with the name of the
// compiled executable.
type CompileError struct {
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s: %v", e.Name, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
