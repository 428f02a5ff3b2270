// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package validator

import "fmt"

// MissingReferenceError reports a task invoking an id that was not resolved.
type MissingReferenceError struct {
	Executable string
	Task       string
	Ref        string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: task %q references %q, which was not found in the dependency path", e.Executable, e.Task, e.Ref)
}

// DuplicateBindingNameError reports a name declared twice in one list.
type DuplicateBindingNameError struct {
	Executable string
	// List is the list holding the duplicate, e.g. "inputs" or
	// `arguments of task "a"`.
	List string
	Name string
}

func (e *DuplicateBindingNameError) Error() string {
	return fmt.Sprintf("%s: duplicate name %q in %s", e.Executable, e.Name, e.List)
}

// UnresolvedNavigationTargetError reports a result of an invoked executable
// that cannot be routed. Target is empty when the task does not map the
// result and the flow has no result of the same name.
type UnresolvedNavigationTargetError struct {
	Executable string
	Task       string
	Result     string
	Target     string
}

func (e *UnresolvedNavigationTargetError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: task %q does not navigate result %q and the flow declares no result with that name", e.Executable, e.Task, e.Result)
	}
	return fmt.Sprintf("%s: task %q navigates result %q to %q, which is neither a task nor a result of the flow", e.Executable, e.Task, e.Result, e.Target)
}

// EmptyTaskListError reports a flow without tasks.
type EmptyTaskListError struct {
	Executable string
}

func (e *EmptyTaskListError) Error() string {
	return fmt.Sprintf("%s: flow must declare at least one task", e.Executable)
}
