// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Binding ties a name to a Value.
type Binding struct {
	Name  string
	Value Value
}

// FunctionDependencies returns the functions the bound value calls.
func (b Binding) FunctionDependencies() []string {
	return b.Value.FunctionDependencies()
}

// SystemPropertyDependencies returns the system properties the bound value
// reads.
func (b Binding) SystemPropertyDependencies() []string {
	return b.Value.SystemPropertyDependencies()
}

// Input is a declared input of an executable. Value is the default used when
// the caller binds nothing.
type Input struct {
	Binding
	Required  bool
	Private   bool
	Sensitive bool
}

// Output is a value an executable publishes when it ends.
type Output struct {
	Binding
}

// Result is a named outcome of an executable. Value is the condition that
// selects it; an empty value always matches.
type Result struct {
	Binding
}

// Argument binds a value to an input of the executable a task invokes.
type Argument struct {
	Binding
}

const (
	ResultSuccess = "SUCCESS"
	ResultFailure = "FAILURE"
)

// DefaultResults returns the results given to an executable that declares
// none, in order.
func DefaultResults() []Result {
	return []Result{
		{Binding: Binding{Name: ResultSuccess}},
		{Binding: Binding{Name: ResultFailure}},
	}
}
