// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import "github.com/specialistvlad/slangc/internal/model"

// Binding is the compiled form of an input, output, result or argument.
// Expression is the source text; it is evaluated by the run-time.
type Binding struct {
	Name       string `json:"name" yaml:"name"`
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`
	Literal    bool   `json:"literal,omitempty" yaml:"literal,omitempty"`
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Private    bool   `json:"private,omitempty" yaml:"private,omitempty"`
	Sensitive  bool   `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
}

// ActionPayload is the work of an operation.
type ActionPayload struct {
	Kind    model.ActionKind `json:"kind" yaml:"kind"`
	Script  string           `json:"script,omitempty" yaml:"script,omitempty"`
	Handler string           `json:"handler,omitempty" yaml:"handler,omitempty"`
}

// NavigationEntry routes one result of the invoked executable.
type NavigationEntry struct {
	Result       string `json:"result" yaml:"result"`
	NextStepID   int64  `json:"nextStepId" yaml:"nextStepId"`
	PresetResult string `json:"presetResult,omitempty" yaml:"presetResult,omitempty"`
}

// ResultNavigation returns the entry as a model navigation.
func (e NavigationEntry) ResultNavigation() model.ResultNavigation {
	return model.ResultNavigation{NextStepID: e.NextStepID, PresetResult: e.PresetResult}
}

// LoopMode tells the run-time how to repeat a task.
type LoopMode string

const (
	LoopSequential LoopMode = "sequential"
	LoopParallel   LoopMode = "parallel"
)

// Loop describes a looping task. Nothing is unrolled at compile time.
type Loop struct {
	Kind       model.LoopKind `json:"kind" yaml:"kind"`
	VarName    string         `json:"varName,omitempty" yaml:"varName,omitempty"`
	KeyName    string         `json:"keyName,omitempty" yaml:"keyName,omitempty"`
	ValueName  string         `json:"valueName,omitempty" yaml:"valueName,omitempty"`
	Expression string         `json:"expression" yaml:"expression"`
	Mode       LoopMode       `json:"mode" yaml:"mode"`
	// Accumulator names the binding collecting the per-iteration outcomes.
	Accumulator string `json:"accumulator,omitempty" yaml:"accumulator,omitempty"`
	// Join is set when fanned-out branches must all finish before navigation.
	Join bool `json:"join,omitempty" yaml:"join,omitempty"`
}

// NewBinding converts a model binding. The expression is kept as written.
func NewBinding(b model.Binding) Binding {
	return Binding{
		Name:       b.Name,
		Expression: b.Value.Text(),
		Literal:    b.Value.Kind() == model.KindNative,
		Sensitive:  b.Value.Sensitive(),
	}
}

// NewInputBindings converts declared inputs, keeping their flags.
func NewInputBindings(inputs []model.Input) []Binding {
	out := make([]Binding, 0, len(inputs))
	for _, in := range inputs {
		b := NewBinding(in.Binding)
		b.Required = in.Required
		b.Private = in.Private
		b.Sensitive = b.Sensitive || in.Sensitive
		out = append(out, b)
	}
	return out
}
