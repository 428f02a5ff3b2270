// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// NavigationRule routes one result of the invoked executable. Target is the
// name of another task or of a result of the enclosing flow.
type NavigationRule struct {
	Result string
	Target string
}

// ResultNavigation is a compiled navigation entry. PresetResult is set only
// when the move ends the flow, and names the flow result it ends with.
type ResultNavigation struct {
	NextStepID   int64
	PresetResult string
}

// IsTerminal reports whether following this entry ends the flow.
func (n ResultNavigation) IsTerminal() bool {
	return n.PresetResult != ""
}
