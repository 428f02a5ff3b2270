// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package validator

import (
	"errors"
	"testing"

	"github.com/specialistvlad/slangc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operation(t *testing.T, id string, results ...string) *model.Operation {
	t.Helper()
	h := model.Header{Name: id}
	for _, r := range results {
		h.Results = append(h.Results, model.Result{Binding: model.Binding{Name: r}})
	}
	op, err := model.NewOperation(h, model.Action{Kind: model.ActionScript, Script: "pass"})
	require.NoError(t, err)
	return op
}

func newFlow(t *testing.T, h model.Header, tasks ...model.Task) *model.Flow {
	t.Helper()
	f, err := model.NewFlow(h, tasks)
	require.NoError(t, err)
	return f
}

func input(name string) model.Input {
	return model.Input{Binding: model.Binding{Name: name}}
}

func TestValidate_ValidFlow(t *testing.T) {
	printOp := operation(t, "print")
	f := newFlow(t, model.Header{Name: "main"},
		model.Task{Name: "a", Ref: "print", Navigation: []model.NavigationRule{{Result: "SUCCESS", Target: "b"}}},
		model.Task{Name: "b", Ref: "print"},
	)
	deps := map[string]model.Executable{"print": printOp}

	assert.NoError(t, Validate(f, deps))
	assert.Empty(t, ValidateAll(f, deps))
}

func TestValidate_Operation(t *testing.T) {
	op, err := model.NewOperation(model.Header{Name: "op", Inputs: []model.Input{input("x"), input("x")}},
		model.Action{Kind: model.ActionScript, Script: "pass"})
	require.NoError(t, err)

	err = Validate(op, nil)
	var dup *DuplicateBindingNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "inputs", dup.List)
	assert.Equal(t, "x", dup.Name)
}

func TestValidate_EachCheck(t *testing.T) {
	twoResults := operation(t, "branch", "SUCCESS", "RETRY")

	testCases := []struct {
		name        string
		exe         model.Executable
		deps        map[string]model.Executable
		target      any
		errContains string
	}{
		{
			name:        "empty task list",
			exe:         newFlow(t, model.Header{Name: "empty"}),
			target:      new(*EmptyTaskListError),
			errContains: "at least one task",
		},
		{
			name: "duplicate output",
			exe: newFlow(t, model.Header{Name: "f", Outputs: []model.Output{
				{Binding: model.Binding{Name: "o"}}, {Binding: model.Binding{Name: "o"}},
			}}, model.Task{Name: "a", Ref: "branch", Navigation: []model.NavigationRule{{Result: "RETRY", Target: "a"}}}),
			deps:        map[string]model.Executable{"branch": twoResults},
			target:      new(*DuplicateBindingNameError),
			errContains: `duplicate name "o" in outputs`,
		},
		{
			name: "duplicate task",
			exe: newFlow(t, model.Header{Name: "f"},
				model.Task{Name: "a", Ref: "print"},
				model.Task{Name: "a", Ref: "print"},
			),
			deps:        map[string]model.Executable{"print": operation(t, "print")},
			target:      new(*DuplicateBindingNameError),
			errContains: `duplicate name "a" in tasks`,
		},
		{
			name:        "missing reference",
			exe:         newFlow(t, model.Header{Name: "f"}, model.Task{Name: "a", Ref: "nowhere"}),
			target:      new(*MissingReferenceError),
			errContains: `references "nowhere"`,
		},
		{
			name: "duplicate argument",
			exe: newFlow(t, model.Header{Name: "f"}, model.Task{Name: "a", Ref: "print", Arguments: []model.Argument{
				{Binding: model.Binding{Name: "text"}}, {Binding: model.Binding{Name: "text"}},
			}}),
			deps:        map[string]model.Executable{"print": operation(t, "print")},
			target:      new(*DuplicateBindingNameError),
			errContains: `arguments of task "a"`,
		},
		{
			name: "navigation to unknown target",
			exe: newFlow(t, model.Header{Name: "f"}, model.Task{Name: "a", Ref: "print", Navigation: []model.NavigationRule{
				{Result: "SUCCESS", Target: "nowhere"},
			}}),
			deps:        map[string]model.Executable{"print": operation(t, "print")},
			target:      new(*UnresolvedNavigationTargetError),
			errContains: `to "nowhere"`,
		},
		{
			name:        "unmapped result without matching flow result",
			exe:         newFlow(t, model.Header{Name: "f"}, model.Task{Name: "a", Ref: "branch"}),
			deps:        map[string]model.Executable{"branch": twoResults},
			target:      new(*UnresolvedNavigationTargetError),
			errContains: `does not navigate result "RETRY"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.exe, tc.deps)
			require.Error(t, err)
			require.True(t, errors.As(err, tc.target), "unexpected error type %T", err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestValidate_NavigationToFlowResult(t *testing.T) {
	f := newFlow(t, model.Header{Name: "f", Results: []model.Result{
		{Binding: model.Binding{Name: "SUCCESS"}},
		{Binding: model.Binding{Name: "GAVE_UP"}},
	}}, model.Task{Name: "a", Ref: "branch", Navigation: []model.NavigationRule{{Result: "RETRY", Target: "GAVE_UP"}}})

	deps := map[string]model.Executable{"branch": operation(t, "branch", "SUCCESS", "RETRY")}
	assert.NoError(t, Validate(f, deps))
}

func TestValidateAll_CollectsEverything(t *testing.T) {
	f := newFlow(t, model.Header{Name: "f", Inputs: []model.Input{input("x"), input("x")}},
		model.Task{Name: "a", Ref: "missing"},
		model.Task{Name: "b", Ref: "print", Navigation: []model.NavigationRule{{Result: "SUCCESS", Target: "nowhere"}}},
	)
	deps := map[string]model.Executable{"print": operation(t, "print")}

	errs := ValidateAll(f, deps)
	require.Len(t, errs, 3)

	var dup *DuplicateBindingNameError
	var missing *MissingReferenceError
	var nav *UnresolvedNavigationTargetError
	assert.ErrorAs(t, errs[0], &dup)
	assert.ErrorAs(t, errs[1], &missing)
	assert.ErrorAs(t, errs[2], &nav)

	first := Validate(f, deps)
	assert.Equal(t, errs[0].Error(), first.Error())
}
