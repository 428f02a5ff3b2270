// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/plan"
)

const (
	startStepName = "start"
	endStepName   = "end"
)

// PlanBuilder converts one executable into its ExecutionPlan. Primary and
// dependency executables go through the same code path.
type PlanBuilder struct {
	// built holds the plans of dependencies compiled so far, by id. Task
	// steps link to their entry step.
	built map[string]*plan.ExecutionPlan
}

// NewPlanBuilder returns a builder linking task steps to the given plans.
func NewPlanBuilder(built map[string]*plan.ExecutionPlan) *PlanBuilder {
	if built == nil {
		built = make(map[string]*plan.ExecutionPlan)
	}
	return &PlanBuilder{built: built}
}

// Build returns the plan of exe. deps are the resolved direct dependencies of
// exe, keyed by id.
func (b *PlanBuilder) Build(exe model.Executable, deps map[string]model.Executable) (*plan.ExecutionPlan, error) {
	switch e := exe.(type) {
	case *model.Operation:
		return b.buildOperation(e)
	case *model.Flow:
		return b.buildFlow(e, deps)
	default:
		return nil, &UnsupportedExecutableTypeError{Executable: exe.ID(), Type: exe.Type()}
	}
}

// buildOperation emits the fixed start -> action -> end plan.
func (b *PlanBuilder) buildOperation(op *model.Operation) (*plan.ExecutionPlan, error) {
	p := plan.New(op.Name(), op.ID(), model.TypeOperation)
	inputs := plan.NewInputBindings(op.Inputs())

	start := plan.NewStep(1, startStepName, plan.StepStart)
	start.ActionData.Set(plan.KeyOperationInputs, inputs)
	start.ActionData.Set(plan.KeyNextStepID, int64(2))

	action := op.Action()
	act := plan.NewStep(2, op.Name(), plan.StepAction)
	act.ActionData.Set(plan.KeyActionPayload, plan.ActionPayload{
		Kind:    action.Kind,
		Script:  action.Script,
		Handler: action.Handler,
	})
	act.ActionData.Set(plan.KeyOperationInputs, inputs)
	act.ActionData.Set(plan.KeyNextStepID, int64(3))

	end := b.endStep(3, op)

	for _, s := range []*plan.ExecutionStep{start, act, end} {
		if err := p.AddStep(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// buildFlow emits one task step per task, in declaration order, followed by
// the terminal end step.
func (b *PlanBuilder) buildFlow(flow *model.Flow, deps map[string]model.Executable) (*plan.ExecutionPlan, error) {
	p := plan.New(flow.Name(), flow.ID(), model.TypeFlow)
	tasks := flow.Tasks()
	endID := int64(len(tasks) + 1)

	stepIDs := make(map[string]int64, len(tasks))
	for i, t := range tasks {
		if _, dup := stepIDs[t.Name]; !dup {
			stepIDs[t.Name] = int64(i + 1)
		}
	}
	results := make(map[string]struct{})
	for _, r := range flow.Results() {
		results[r.Name] = struct{}{}
	}

	for i, task := range tasks {
		dep, ok := deps[task.Ref]
		if !ok {
			return nil, &UnreachableDependencyError{Executable: flow.ID(), Task: task.Name, Ref: task.Ref}
		}
		entry, ok := b.entryStep(flow, task.Ref)
		if !ok {
			return nil, &UnreachableDependencyError{Executable: flow.ID(), Task: task.Name, Ref: task.Ref}
		}

		step := plan.NewStep(int64(i+1), task.Name, plan.StepTask)
		step.ActionData.Set(plan.KeyTaskArguments, argumentBindings(task.Arguments))
		step.ActionData.Set(plan.KeySubflowID, task.Ref)
		step.ActionData.Set(plan.KeySubflowEntryStepID, entry)
		if task.Loop != nil {
			step.ActionData.Set(plan.KeyLoop, loopDescriptor(task))
		}
		step.ActionData.Set(plan.KeyNavigation, navigation(task, dep, stepIDs, results, endID))

		if err := p.AddStep(step); err != nil {
			return nil, err
		}
	}

	if err := p.AddStep(b.endStep(endID, flow)); err != nil {
		return nil, err
	}
	p.SetSubflowIDs(flow.ExecutableDependencies())
	return p, nil
}

// entryStep returns the begin step of the plan invoked by ref. A flow invoking
// itself enters its own plan, which is still being built.
func (b *PlanBuilder) entryStep(flow *model.Flow, ref string) (int64, bool) {
	if ref == flow.ID() {
		return 1, true
	}
	dep, ok := b.built[ref]
	if !ok {
		return 0, false
	}
	return dep.BeginStep, true
}

func (b *PlanBuilder) endStep(id int64, exe model.Executable) *plan.ExecutionStep {
	end := plan.NewStep(id, endStepName, plan.StepEnd)
	end.Terminal = true

	outputs := make([]plan.Binding, 0, len(exe.Outputs()))
	for _, o := range exe.Outputs() {
		outputs = append(outputs, plan.NewBinding(o.Binding))
	}
	results := make([]plan.Binding, 0, len(exe.Results()))
	for _, r := range exe.Results() {
		results = append(results, plan.NewBinding(r.Binding))
	}
	end.ActionData.Set(plan.KeyExecutableOutputs, outputs)
	end.ActionData.Set(plan.KeyExecutableResults, results)
	return end
}

// navigation routes the results of dep. Explicit rules come first, in
// declaration order; the remaining results of dep follow, routed to the flow
// result of the same name when there is one. A target naming both a task and
// a result goes to the task.
func navigation(task model.Task, dep model.Executable, stepIDs map[string]int64, results map[string]struct{}, endID int64) []plan.NavigationEntry {
	entries := make([]plan.NavigationEntry, 0, len(task.Navigation))
	mapped := make(map[string]struct{}, len(task.Navigation))

	for _, rule := range task.Navigation {
		if _, dup := mapped[rule.Result]; dup {
			continue
		}
		mapped[rule.Result] = struct{}{}

		if id, ok := stepIDs[rule.Target]; ok {
			entries = append(entries, plan.NavigationEntry{Result: rule.Result, NextStepID: id})
			continue
		}
		if _, ok := results[rule.Target]; ok {
			entries = append(entries, plan.NavigationEntry{Result: rule.Result, NextStepID: endID, PresetResult: rule.Target})
		}
	}

	for _, r := range dep.Results() {
		if _, ok := mapped[r.Name]; ok {
			continue
		}
		if _, ok := results[r.Name]; !ok {
			continue
		}
		mapped[r.Name] = struct{}{}
		entries = append(entries, plan.NavigationEntry{Result: r.Name, NextStepID: endID, PresetResult: r.Name})
	}
	return entries
}

func loopDescriptor(task model.Task) plan.Loop {
	switch l := task.Loop.(type) {
	case model.ListForLoop:
		return plan.Loop{
			Kind:        l.Kind(),
			VarName:     l.VarName,
			Expression:  l.Expression.Text(),
			Mode:        plan.LoopSequential,
			Accumulator: task.Name,
		}
	case model.MapForLoop:
		return plan.Loop{
			Kind:        l.Kind(),
			KeyName:     l.KeyName,
			ValueName:   l.ValueName,
			Expression:  l.Expression.Text(),
			Mode:        plan.LoopSequential,
			Accumulator: task.Name,
		}
	case model.ParallelLoop:
		return plan.Loop{
			Kind:       l.Kind(),
			VarName:    l.VarName,
			Expression: l.Expression.Text(),
			Mode:       plan.LoopParallel,
			Join:       true,
		}
	default:
		return plan.Loop{Kind: task.Loop.Kind(), Expression: task.Loop.Collection().Text()}
	}
}

func argumentBindings(args []model.Argument) []plan.Binding {
	out := make([]plan.Binding, 0, len(args))
	for _, a := range args {
		out = append(out, plan.NewBinding(a.Binding))
	}
	return out
}
