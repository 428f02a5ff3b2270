// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/specialistvlad/slangc/internal/execid"
	"github.com/specialistvlad/slangc/internal/metadata"
)

// Type names an executable variant.
type Type string

const (
	TypeOperation Type = "operation"
	TypeFlow      Type = "flow"
)

// Executable is a compilable unit: an *Operation or a *Flow.
type Executable interface {
	// ID is the fully-qualified id, `namespace.name`.
	ID() string
	Name() string
	Namespace() string
	Type() Type
	// Description is never nil.
	Description() *metadata.Metadata
	// Source is nil for executables built in memory.
	Source() *FSInfo
	Inputs() []Input
	Outputs() []Output
	// Results is never empty.
	Results() []Result
	// SystemPropertyDependencies returns the sorted union of the system
	// properties read by any binding of the executable.
	SystemPropertyDependencies() []string
	// ExecutableDependencies returns the sorted ids the executable invokes.
	ExecutableDependencies() []string
}

// Header holds the attributes shared by all executables.
type Header struct {
	Namespace   string
	Name        string
	Description *metadata.Metadata
	Source      *FSInfo
	Inputs      []Input
	Outputs     []Output
	Results     []Result
}

// header is the immutable part shared by Operation and Flow.
type header struct {
	id          string
	namespace   string
	name        string
	description *metadata.Metadata
	source      *FSInfo
	inputs      []Input
	outputs     []Output
	results     []Result
	properties  []string
}

func newHeader(h Header) (header, error) {
	if h.Name == "" {
		return header{}, fmt.Errorf("executable name cannot be empty")
	}
	if strings.Contains(h.Name, ".") {
		return header{}, fmt.Errorf("executable name %q must not contain '.'", h.Name)
	}
	id := execid.Join(h.Namespace, h.Name)
	if _, err := execid.Parse(id); err != nil {
		return header{}, fmt.Errorf("invalid executable id: %w", err)
	}

	description := h.Description
	if description == nil {
		description = metadata.New()
	}

	inputs := slices.Clone(h.Inputs)
	for i := range inputs {
		if inputs[i].Sensitive {
			inputs[i].Value = inputs[i].Value.AsSensitive()
		}
	}

	results := slices.Clone(h.Results)
	if len(results) == 0 {
		results = DefaultResults()
	}

	return header{
		id:          id,
		namespace:   h.Namespace,
		name:        h.Name,
		description: description,
		source:      h.Source,
		inputs:      inputs,
		outputs:     slices.Clone(h.Outputs),
		results:     results,
	}, nil
}

func (h *header) ID() string                           { return h.id }
func (h *header) Name() string                         { return h.name }
func (h *header) Namespace() string                    { return h.namespace }
func (h *header) Description() *metadata.Metadata      { return h.description }
func (h *header) Source() *FSInfo                      { return h.source }
func (h *header) Inputs() []Input                      { return slices.Clone(h.inputs) }
func (h *header) Outputs() []Output                    { return slices.Clone(h.outputs) }
func (h *header) Results() []Result                    { return slices.Clone(h.results) }
func (h *header) SystemPropertyDependencies() []string { return slices.Clone(h.properties) }

// bindings returns every binding of the header, in declaration order.
func (h *header) bindings() []Binding {
	var out []Binding
	for _, in := range h.inputs {
		out = append(out, in.Binding)
	}
	for _, o := range h.outputs {
		out = append(out, o.Binding)
	}
	for _, r := range h.results {
		out = append(out, r.Binding)
	}
	return out
}

// collectProperties returns the sorted union of the system properties read by
// the given values.
func collectProperties(values ...Value) []string {
	set := make(map[string]struct{})
	for _, v := range values {
		for _, p := range v.SystemPropertyDependencies() {
			set[p] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

func bindingValues(bindings []Binding) []Value {
	values := make([]Value, 0, len(bindings))
	for _, b := range bindings {
		values = append(values, b.Value)
	}
	return values
}

// ActionKind names the kind of work an operation performs.
type ActionKind string

const (
	ActionScript ActionKind = "script"
	ActionNative ActionKind = "native"
)

// Action is the payload of an Operation: script text, or the name of a
// native handler the run-time resolves.
type Action struct {
	Kind    ActionKind
	Script  string
	Handler string
}

func (a Action) validate() error {
	switch a.Kind {
	case ActionScript:
		if strings.TrimSpace(a.Script) == "" {
			return fmt.Errorf("script action has no script")
		}
	case ActionNative:
		if a.Handler == "" {
			return fmt.Errorf("native action has no handler")
		}
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	return nil
}

// Operation is a leaf executable.
type Operation struct {
	header
	action Action
}

var _ Executable = (*Operation)(nil)

// NewOperation validates and builds an Operation.
func NewOperation(h Header, action Action) (*Operation, error) {
	hd, err := newHeader(h)
	if err != nil {
		return nil, err
	}
	if err := action.validate(); err != nil {
		return nil, fmt.Errorf("operation %s: %w", hd.id, err)
	}
	hd.properties = collectProperties(bindingValues(hd.bindings())...)
	return &Operation{header: hd, action: action}, nil
}

func (o *Operation) Type() Type { return TypeOperation }

// Action returns the operation payload.
func (o *Operation) Action() Action { return o.action }

// ExecutableDependencies is always empty for an operation.
func (o *Operation) ExecutableDependencies() []string { return nil }

// Flow orchestrates ordered tasks.
type Flow struct {
	header
	tasks []Task
	deps  []string
}

var _ Executable = (*Flow)(nil)

// NewFlow validates and builds a Flow. Structural checks that need the
// dependencies, such as an empty task list, are left to the validator.
func NewFlow(h Header, tasks []Task) (*Flow, error) {
	hd, err := newHeader(h)
	if err != nil {
		return nil, err
	}

	copied := make([]Task, 0, len(tasks))
	refs := make(map[string]struct{})
	values := bindingValues(hd.bindings())
	for i, t := range tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("flow %s: task %d has no name", hd.id, i+1)
		}
		if _, err := execid.Parse(t.Ref); err != nil {
			return nil, fmt.Errorf("flow %s: task %q: invalid reference: %w", hd.id, t.Name, err)
		}
		refs[t.Ref] = struct{}{}
		for _, arg := range t.Arguments {
			values = append(values, arg.Value)
		}
		if t.Loop != nil {
			values = append(values, t.Loop.Collection())
		}
		copied = append(copied, t.clone())
	}
	hd.properties = collectProperties(values...)

	var deps []string
	if len(refs) > 0 {
		deps = slices.Sorted(maps.Keys(refs))
	}
	return &Flow{header: hd, tasks: copied, deps: deps}, nil
}

func (f *Flow) Type() Type { return TypeFlow }

// Tasks returns the tasks in declaration order.
func (f *Flow) Tasks() []Task {
	out := make([]Task, len(f.tasks))
	for i, t := range f.tasks {
		out[i] = t.clone()
	}
	return out
}

// Task returns the first task named name.
func (f *Flow) Task(name string) (Task, bool) {
	for _, t := range f.tasks {
		if t.Name == name {
			return t.clone(), true
		}
	}
	return Task{}, false
}

// ExecutableDependencies returns the sorted ids the tasks invoke.
func (f *Flow) ExecutableDependencies() []string { return slices.Clone(f.deps) }
