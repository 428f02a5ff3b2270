// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/slangc/internal/ctxlog"
	"github.com/specialistvlad/slangc/internal/dag"
	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/plan"
	"github.com/specialistvlad/slangc/internal/resolver"
	"github.com/specialistvlad/slangc/internal/validator"
)

// Compiler runs the compilation pipeline. It holds no state, so one value
// can serve concurrent compilations.
type Compiler struct{}

func New() *Compiler {
	return &Compiler{}
}

// Compile compiles exe against the candidate pool. exe is added to the pool
// so a flow can invoke itself. Validation stops at the first error; use
// ValidateWithDependencies to list them all. Every failure is a
// *CompileError.
func (c *Compiler) Compile(ctx context.Context, exe model.Executable, pool []model.Executable) (*plan.CompilationArtifact, error) {
	if exe == nil {
		return nil, &CompileError{Name: "<nil>", Err: errors.New("executable is nil")}
	}
	artifact, err := c.compile(ctx, exe, pool)
	if err != nil {
		return nil, &CompileError{Name: exe.Name(), Err: err}
	}
	return artifact, nil
}

func (c *Compiler) compile(ctx context.Context, exe model.Executable, pool []model.Executable) (*plan.CompilationArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = ctxlog.With(ctx, "executable", exe.ID())
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compiling.", "type", exe.Type(), "pool", len(pool))

	if err := resolver.CheckPath(exe, pool); err != nil {
		return nil, err
	}
	pool = append(slices.Clone(pool), exe)

	direct, err := resolver.Resolve(ctx, exe, pool)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(exe, direct); err != nil {
		return nil, err
	}

	reach, err := walkDependencies(ctx, exe, direct, pool)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dependencies walked.", "reachable", len(reach.executables), "nodes", reach.graph.Len())

	order, err := reach.graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	plans := make(map[string]*plan.ExecutionPlan, len(reach.executables))
	builder := NewPlanBuilder(plans)
	for _, id := range order {
		if id == exe.ID() {
			continue
		}
		dep := reach.executables[id]
		p, err := builder.Build(dep, reach.resolved[id])
		if err != nil {
			return nil, err
		}
		plans[id] = p

		invokes, _ := reach.graph.Dependencies(id)
		invokedBy, _ := reach.graph.Dependents(id)
		logger.Debug("Dependency plan built.", "dependency", id, "steps", p.Len(), "invokes", invokes, "invoked_by", invokedBy)
	}

	primary, err := builder.Build(exe, direct)
	if err != nil {
		return nil, err
	}

	subflows := slices.Collect(maps.Keys(reach.executables))
	if _, self := direct[exe.ID()]; self {
		subflows = append(subflows, exe.ID())
		plans[exe.ID()] = primary
	}
	primary.SetSubflowIDs(subflows)
	logger.Debug("Primary plan built.", "steps", primary.Len(), "subflows", len(primary.SubflowIDs))

	return assemble(primary, plans, exe, reach.executables), nil
}

// ValidateWithDependencies returns every structural error of exe against the
// given dependencies without compiling anything. As in Compile, exe itself is
// available to its own tasks. When several dependencies share an id the first
// one is used.
func (c *Compiler) ValidateWithDependencies(exe model.Executable, deps []model.Executable) []error {
	if exe == nil {
		return []error{errors.New("executable is nil")}
	}
	byID := make(map[string]model.Executable, len(deps)+1)
	for _, dep := range append(slices.Clone(deps), exe) {
		if dep == nil {
			continue
		}
		if _, seen := byID[dep.ID()]; !seen {
			byID[dep.ID()] = dep
		}
	}
	return validator.ValidateAll(exe, byID)
}

// reachable is the dependency closure of a primary executable.
type reachable struct {
	// executables holds every dependency reachable from the primary, by id,
	// excluding the primary itself.
	executables map[string]model.Executable
	// resolved holds the direct dependencies of each reachable executable.
	resolved map[string]map[string]model.Executable
	graph    *dag.Graph
}

// walkDependencies resolves and validates every executable reachable from
// exe. Each id is visited once, so cyclic reference sets terminate and are
// reported by the graph.
func walkDependencies(ctx context.Context, exe model.Executable, direct map[string]model.Executable, pool []model.Executable) (*reachable, error) {
	r := &reachable{
		executables: make(map[string]model.Executable),
		resolved:    map[string]map[string]model.Executable{exe.ID(): direct},
		graph:       dag.New(),
	}
	r.graph.AddNode(exe.ID())

	visited := map[string]bool{exe.ID(): true}
	queue := []string{exe.ID()}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		from := queue[0]
		queue = queue[1:]

		deps := r.resolved[from]
		for _, id := range slices.Sorted(maps.Keys(deps)) {
			dep := deps[id]
			r.graph.AddNode(id)
			if id != from {
				if err := r.graph.AddEdge(id, from); err != nil {
					return nil, err
				}
			}
			if visited[id] {
				continue
			}
			visited[id] = true
			r.executables[id] = dep

			resolved, err := resolver.Resolve(ctx, dep, pool)
			if err != nil {
				return nil, err
			}
			if err := validator.Validate(dep, resolved); err != nil {
				return nil, fmt.Errorf("dependency %s: %w", id, err)
			}
			r.resolved[id] = resolved
			queue = append(queue, id)
		}
	}

	if err := r.graph.DetectCycles(); err != nil {
		var cycle *dag.CycleError
		if errors.As(err, &cycle) {
			return nil, &CyclicDependencyError{Path: cycle.Path, Err: err}
		}
		return nil, err
	}
	return r, nil
}
