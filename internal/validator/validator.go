// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package validator checks an executable and its resolved dependencies for
// structural errors before a plan is built.
package validator

import (
	"fmt"

	"github.com/specialistvlad/slangc/internal/model"
)

// Validate returns the first structural error of exe, or nil.
func Validate(exe model.Executable, deps map[string]model.Executable) error {
	var first error
	walk(exe, deps, func(err error) bool {
		first = err
		return false
	})
	return first
}

// ValidateAll returns every structural error of exe in the order the checks
// find them.
func ValidateAll(exe model.Executable, deps map[string]model.Executable) []error {
	var errs []error
	walk(exe, deps, func(err error) bool {
		errs = append(errs, err)
		return true
	})
	return errs
}

// emitFunc receives each error and returns false to stop the walk.
type emitFunc func(error) bool

func walk(exe model.Executable, deps map[string]model.Executable, emit emitFunc) {
	id := exe.ID()
	flow, isFlow := exe.(*model.Flow)

	if isFlow && len(flow.Tasks()) == 0 {
		if !emit(&EmptyTaskListError{Executable: id}) {
			return
		}
	}

	if !checkUnique(id, "inputs", names(exe.Inputs()), emit) {
		return
	}
	if !checkUnique(id, "outputs", names(exe.Outputs()), emit) {
		return
	}
	if !checkUnique(id, "results", names(exe.Results()), emit) {
		return
	}

	if !isFlow {
		return
	}

	taskNames := make(map[string]struct{})
	taskList := make([]string, 0, len(flow.Tasks()))
	for _, t := range flow.Tasks() {
		taskNames[t.Name] = struct{}{}
		taskList = append(taskList, t.Name)
	}
	if !checkUnique(id, "tasks", taskList, emit) {
		return
	}
	resultNames := make(map[string]struct{})
	for _, r := range flow.Results() {
		resultNames[r.Name] = struct{}{}
	}

	for _, task := range flow.Tasks() {
		dep, resolved := deps[task.Ref]
		if !resolved {
			if !emit(&MissingReferenceError{Executable: id, Task: task.Name, Ref: task.Ref}) {
				return
			}
		}

		list := fmt.Sprintf("arguments of task %q", task.Name)
		if !checkUnique(id, list, names(task.Arguments), emit) {
			return
		}

		for _, rule := range task.Navigation {
			_, isTask := taskNames[rule.Target]
			_, isResult := resultNames[rule.Target]
			if isTask || isResult {
				continue
			}
			if !emit(&UnresolvedNavigationTargetError{Executable: id, Task: task.Name, Result: rule.Result, Target: rule.Target}) {
				return
			}
		}

		if !resolved {
			continue
		}
		for _, r := range dep.Results() {
			if _, mapped := task.Target(r.Name); mapped {
				continue
			}
			if _, ok := resultNames[r.Name]; ok {
				continue
			}
			if !emit(&UnresolvedNavigationTargetError{Executable: id, Task: task.Name, Result: r.Name}) {
				return
			}
		}
	}
}

// checkUnique emits one error per repeated name and reports whether the walk
// should go on.
func checkUnique(id, list string, names []string, emit emitFunc) bool {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			if !emit(&DuplicateBindingNameError{Executable: id, List: list, Name: name}) {
				return false
			}
			continue
		}
		seen[name] = struct{}{}
	}
	return true
}

type named interface {
	model.Input | model.Output | model.Result | model.Argument
}

func names[T named](bindings []T) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, bindingName(b))
	}
	return out
}

func bindingName[T named](b T) string {
	switch v := any(b).(type) {
	case model.Input:
		return v.Name
	case model.Output:
		return v.Name
	case model.Result:
		return v.Name
	case model.Argument:
		return v.Name
	default:
		return ""
	}
}
