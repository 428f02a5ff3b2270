// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"testing"

	"github.com/specialistvlad/slangc/internal/plan"
	"github.com/stretchr/testify/require"
)

// RequireWellFormed checks the shape every plan must have: ids contiguous
// from 1 and exactly one terminal step, the last one.
func RequireWellFormed(t *testing.T, p *plan.ExecutionPlan) {
	t.Helper()

	require.NotEmpty(t, p.Steps, "plan %s has no steps", p.Name)
	for i, s := range p.Steps {
		require.Equal(t, int64(i+1), s.ID, "plan %s: step %q out of sequence", p.Name, s.Name)
	}
	terminal := p.TerminalSteps()
	require.Len(t, terminal, 1, "plan %s must have one terminal step", p.Name)
	require.Equal(t, int64(len(p.Steps)), terminal[0].ID, "plan %s: terminal step must be last", p.Name)
}
