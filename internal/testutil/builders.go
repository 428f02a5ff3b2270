// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/slangc/internal/model"
	"github.com/stretchr/testify/require"
)

// Value parses text as a binding value.
func Value(t *testing.T, text string) model.Value {
	t.Helper()
	v, err := model.ParseValue(text)
	require.NoError(t, err)
	return v
}

// Header splits a dotted id into namespace and name.
func Header(id string) model.Header {
	h := model.Header{Name: id}
	if i := strings.LastIndex(id, "."); i >= 0 {
		h.Namespace, h.Name = id[:i], id[i+1:]
	}
	return h
}

// Results declares results without conditions.
func Results(names ...string) []model.Result {
	out := make([]model.Result, 0, len(names))
	for _, n := range names {
		out = append(out, model.Result{Binding: model.Binding{Name: n}})
	}
	return out
}

// Inputs declares optional inputs without defaults.
func Inputs(names ...string) []model.Input {
	out := make([]model.Input, 0, len(names))
	for _, n := range names {
		out = append(out, model.Input{Binding: model.Binding{Name: n}})
	}
	return out
}

// Operation builds a script operation. h.Name may hold a dotted id.
func Operation(t *testing.T, h model.Header) *model.Operation {
	t.Helper()
	if h.Namespace == "" {
		id := Header(h.Name)
		h.Namespace, h.Name = id.Namespace, id.Name
	}
	op, err := model.NewOperation(h, model.Action{Kind: model.ActionScript, Script: "pass"})
	require.NoError(t, err)
	return op
}

// Flow builds a flow. h.Name may hold a dotted id.
func Flow(t *testing.T, h model.Header, tasks ...model.Task) *model.Flow {
	t.Helper()
	if h.Namespace == "" {
		id := Header(h.Name)
		h.Namespace, h.Name = id.Namespace, id.Name
	}
	f, err := model.NewFlow(h, tasks)
	require.NoError(t, err)
	return f
}

// Task builds a task invoking ref. nav holds result/target pairs.
func Task(name, ref string, nav ...string) model.Task {
	t := model.Task{Name: name, Ref: ref}
	for i := 0; i+1 < len(nav); i += 2 {
		t.Navigation = append(t.Navigation, model.NavigationRule{Result: nav[i], Target: nav[i+1]})
	}
	return t
}
