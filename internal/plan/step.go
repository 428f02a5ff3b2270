// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

// StepKind names the role of a step.
type StepKind string

const (
	StepStart  StepKind = "start"
	StepAction StepKind = "action"
	StepEnd    StepKind = "end"
	StepTask   StepKind = "task"
)

// ExecutionStep is one node of a plan.
type ExecutionStep struct {
	ID         int64       `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Kind       StepKind    `json:"kind" yaml:"kind"`
	Terminal   bool        `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	ActionData *ActionData `json:"actionData" yaml:"actionData"`
}

// NewStep returns a step with empty action data.
func NewStep(id int64, name string, kind StepKind) *ExecutionStep {
	return &ExecutionStep{ID: id, Name: name, Kind: kind, ActionData: NewActionData()}
}

// NextStepID returns the unconditional successor, if the step has one.
func (s *ExecutionStep) NextStepID() (int64, bool) {
	return get[int64](s.ActionData, KeyNextStepID)
}

// Navigation returns the result routing table of a task step.
func (s *ExecutionStep) Navigation() []NavigationEntry {
	nav, _ := get[[]NavigationEntry](s.ActionData, KeyNavigation)
	return nav
}

// Loop returns the loop descriptor of a task step.
func (s *ExecutionStep) Loop() (Loop, bool) {
	return get[Loop](s.ActionData, KeyLoop)
}

// Bindings returns the bindings stored under key, e.g. KeyExecutableResults.
func (s *ExecutionStep) Bindings(key string) []Binding {
	b, _ := get[[]Binding](s.ActionData, key)
	return b
}

// SubflowEntryStepID returns the begin step of the invoked plan.
func (s *ExecutionStep) SubflowEntryStepID() (int64, bool) {
	return get[int64](s.ActionData, KeySubflowEntryStepID)
}
