// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValue(t *testing.T, text string) Value {
	t.Helper()
	v, err := ParseValue(text)
	require.NoError(t, err)
	return v
}

func TestNewOperation_DefaultResults(t *testing.T) {
	op, err := NewOperation(Header{Namespace: "demo", Name: "test_op"}, Action{Kind: ActionScript, Script: "x = 1"})
	require.NoError(t, err)

	assert.Equal(t, "demo.test_op", op.ID())
	assert.Equal(t, TypeOperation, op.Type())
	assert.NotNil(t, op.Description())
	assert.Empty(t, op.ExecutableDependencies())

	results := op.Results()
	require.Len(t, results, 2)
	assert.Equal(t, ResultSuccess, results[0].Name)
	assert.Equal(t, ResultFailure, results[1].Name)
}

func TestNewOperation_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		header      Header
		action      Action
		errContains string
	}{
		{"empty name", Header{}, Action{Kind: ActionScript, Script: "x"}, "name cannot be empty"},
		{"dotted name", Header{Name: "a.b"}, Action{Kind: ActionScript, Script: "x"}, "must not contain"},
		{"bad namespace", Header{Namespace: "a..b", Name: "op"}, Action{Kind: ActionScript, Script: "x"}, "empty segment"},
		{"empty script", Header{Name: "op"}, Action{Kind: ActionScript, Script: "  "}, "no script"},
		{"no handler", Header{Name: "op"}, Action{Kind: ActionNative}, "no handler"},
		{"unknown action", Header{Name: "op"}, Action{Kind: "python"}, "unknown action kind"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOperation(tc.header, tc.action)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestNewOperation_SystemProperties(t *testing.T) {
	op, err := NewOperation(Header{
		Name: "op",
		Inputs: []Input{
			{Binding: Binding{Name: "host", Value: mustValue(t, `${get_sp("b.host")}`)}},
			{Binding: Binding{Name: "port", Value: mustValue(t, `${get_sp("a.port")}`)}},
		},
		Outputs: []Output{{Binding: Binding{Name: "out", Value: mustValue(t, `${get_sp("b.host")}`)}}},
		Results: []Result{{Binding: Binding{Name: "OK", Value: mustValue(t, `${get_sp("c.flag")}`)}}},
	}, Action{Kind: ActionNative, Handler: "io.demo.Handler"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.port", "b.host", "c.flag"}, op.SystemPropertyDependencies())
	results := op.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "OK", results[0].Name)
	assert.Equal(t, `${get_sp("c.flag")}`, results[0].Value.Text())
}

func TestNewOperation_SensitiveInput(t *testing.T) {
	op, err := NewOperation(Header{
		Name:   "op",
		Inputs: []Input{{Binding: Binding{Name: "password", Value: mustValue(t, "hunter2")}, Sensitive: true}},
	}, Action{Kind: ActionScript, Script: "x"})
	require.NoError(t, err)

	in := op.Inputs()[0]
	assert.True(t, in.Value.Sensitive())
	assert.Equal(t, sensitiveMask, in.Value.String())
}

func TestNewFlow(t *testing.T) {
	tasks := []Task{
		{
			Name: "first",
			Ref:  "ops.print",
			Arguments: []Argument{
				{Binding: Binding{Name: "text", Value: mustValue(t, `${get_sp("flow.greeting")}`)}},
			},
			Navigation: []NavigationRule{{Result: "SUCCESS", Target: "second"}},
		},
		{
			Name: "second",
			Ref:  "ops.print",
			Loop: ListForLoop{VarName: "item", Expression: mustValue(t, `${get_sp("flow.items")}`)},
		},
		{Name: "third", Ref: "ops.add"},
	}

	flow, err := NewFlow(Header{Namespace: "flows", Name: "main"}, tasks)
	require.NoError(t, err)

	assert.Equal(t, "flows.main", flow.ID())
	assert.Equal(t, "flows", flow.Namespace())
	assert.Equal(t, TypeFlow, flow.Type())
	assert.Equal(t, []string{"ops.add", "ops.print"}, flow.ExecutableDependencies())
	assert.Equal(t, []string{"flow.greeting", "flow.items"}, flow.SystemPropertyDependencies())

	got, ok := flow.Task("first")
	require.True(t, ok)
	target, ok := got.Target("SUCCESS")
	require.True(t, ok)
	assert.Equal(t, "second", target)
	_, ok = got.Target("FAILURE")
	assert.False(t, ok)

	_, ok = flow.Task("missing")
	assert.False(t, ok)
}

func TestNewFlow_Immutable(t *testing.T) {
	tasks := []Task{{Name: "a", Ref: "x", Navigation: []NavigationRule{{Result: "SUCCESS", Target: "SUCCESS"}}}}
	flow, err := NewFlow(Header{Name: "f"}, tasks)
	require.NoError(t, err)

	tasks[0].Navigation[0].Target = "changed"
	returned := flow.Tasks()
	returned[0].Navigation[0].Target = "changed again"

	assert.Equal(t, "SUCCESS", flow.Tasks()[0].Navigation[0].Target)
}

func TestNewFlow_Errors(t *testing.T) {
	_, err := NewFlow(Header{Name: "f"}, []Task{{Ref: "x"}})
	require.ErrorContains(t, err, "has no name")

	_, err = NewFlow(Header{Name: "f"}, []Task{{Name: "a", Ref: "bad ref"}})
	require.ErrorContains(t, err, "invalid reference")
}

func TestNewFlow_NoTasksIsBuildable(t *testing.T) {
	flow, err := NewFlow(Header{Name: "empty"}, nil)
	require.NoError(t, err)
	assert.Empty(t, flow.Tasks())
	assert.Empty(t, flow.ExecutableDependencies())
}

func TestLoopStatements(t *testing.T) {
	coll := mustValue(t, "${inputs.items}")
	loops := []LoopStatement{
		ListForLoop{VarName: "i", Expression: coll},
		MapForLoop{KeyName: "k", ValueName: "v", Expression: coll},
		ParallelLoop{VarName: "i", Expression: coll},
	}
	kinds := []LoopKind{LoopListFor, LoopMapFor, LoopParallel}
	for i, l := range loops {
		assert.Equal(t, kinds[i], l.Kind())
		assert.Equal(t, "${inputs.items}", l.Collection().Text())
	}
}
