// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/slangc/internal/model"
)

// ExecutionPlan is the step graph of one executable. Steps are kept in id
// order and ids are contiguous from 1, so Steps[i].ID == i+1.
type ExecutionPlan struct {
	Name         string           `json:"name" yaml:"name"`
	ExecutableID string           `json:"executableId" yaml:"executableId"`
	Type         model.Type       `json:"type" yaml:"type"`
	BeginStep    int64            `json:"beginStep" yaml:"beginStep"`
	Steps        []*ExecutionStep `json:"steps" yaml:"steps"`
	// SubflowIDs is sorted and free of duplicates.
	SubflowIDs []string `json:"subflowIds" yaml:"subflowIds"`
}

// New returns an empty plan beginning at step 1.
func New(name, executableID string, typ model.Type) *ExecutionPlan {
	return &ExecutionPlan{Name: name, ExecutableID: executableID, Type: typ, BeginStep: 1}
}

// AddStep appends step. Its id must be the next one in sequence.
func (p *ExecutionPlan) AddStep(step *ExecutionStep) error {
	want := int64(len(p.Steps) + 1)
	if step.ID != want {
		return fmt.Errorf("plan %s: step %q has id %d, expected %d", p.Name, step.Name, step.ID, want)
	}
	p.Steps = append(p.Steps, step)
	return nil
}

// Step returns the step with the given id.
func (p *ExecutionPlan) Step(id int64) (*ExecutionStep, bool) {
	if id < 1 || id > int64(len(p.Steps)) {
		return nil, false
	}
	return p.Steps[id-1], true
}

func (p *ExecutionPlan) Len() int {
	return len(p.Steps)
}

// TerminalSteps returns the steps that end the plan.
func (p *ExecutionPlan) TerminalSteps() []*ExecutionStep {
	var out []*ExecutionStep
	for _, s := range p.Steps {
		if s.Terminal {
			out = append(out, s)
		}
	}
	return out
}

// SetSubflowIDs replaces the subflow set with the sorted, de-duplicated ids.
func (p *ExecutionPlan) SetSubflowIDs(ids []string) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	p.SubflowIDs = slices.Compact(sorted)
}

// CompilationArtifact is the output of compiling one executable.
type CompilationArtifact struct {
	Plan *ExecutionPlan `json:"plan" yaml:"plan"`
	// Dependencies maps the id of every reachable dependency to its plan. A
	// primary that invokes itself is listed under its own id, so the keys
	// always equal Plan.SubflowIDs.
	Dependencies map[string]*ExecutionPlan `json:"dependencies" yaml:"dependencies"`
	// Inputs are the declared inputs of the primary executable.
	Inputs []model.Input `json:"-" yaml:"-"`
	// SystemProperties is the sorted union over the primary and its
	// dependencies.
	SystemProperties []string `json:"systemProperties" yaml:"systemProperties"`
}

// DependencyIDs returns the sorted keys of Dependencies.
func (a *CompilationArtifact) DependencyIDs() []string {
	ids := make([]string, 0, len(a.Dependencies))
	for id := range a.Dependencies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
