// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "slices"

// Task is one step of a Flow. It invokes the executable with id Ref.
type Task struct {
	Name      string
	Ref       string
	Arguments []Argument
	// Loop is nil for a task invoked once.
	Loop LoopStatement
	// Navigation is ordered as declared.
	Navigation []NavigationRule
}

// Target returns the navigation target declared for result.
func (t Task) Target(result string) (string, bool) {
	for _, rule := range t.Navigation {
		if rule.Result == result {
			return rule.Target, true
		}
	}
	return "", false
}

// clone returns a copy that shares no slices with t.
func (t Task) clone() Task {
	t.Arguments = slices.Clone(t.Arguments)
	t.Navigation = slices.Clone(t.Navigation)
	return t
}
