// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package compiler

import (
	"maps"
	"slices"

	"github.com/specialistvlad/slangc/internal/model"
	"github.com/specialistvlad/slangc/internal/plan"
)

// assemble bundles the primary plan with the dependency plans. The system
// property set is the union over exe and every executable in deps.
func assemble(primary *plan.ExecutionPlan, plans map[string]*plan.ExecutionPlan, exe model.Executable, deps map[string]model.Executable) *plan.CompilationArtifact {
	properties := make(map[string]struct{})
	for _, p := range exe.SystemPropertyDependencies() {
		properties[p] = struct{}{}
	}
	for _, dep := range deps {
		for _, p := range dep.SystemPropertyDependencies() {
			properties[p] = struct{}{}
		}
	}

	return &plan.CompilationArtifact{
		Plan:             primary,
		Dependencies:     maps.Clone(plans),
		Inputs:           exe.Inputs(),
		SystemProperties: slices.Sorted(maps.Keys(properties)),
	}
}
