// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package exprdeps

import (
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// SystemPropertyFunction is the function binding expressions call to read a
// deploy-time system property, e.g. get_sp("io.demo.hostname").
const SystemPropertyFunction = "get_sp"

// Result holds the sorted, de-duplicated dependencies of a set of expressions.
type Result struct {
	Functions        []string
	SystemProperties []string
	References       []string
}

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Analyze walks the given expressions and collects their dependencies. Nil
// expressions are ignored.
func Analyze(exprs ...hcl.Expression) Result {
	functions := make(map[string]struct{})
	properties := make(map[string]struct{})
	references := make(map[string]struct{})

	for _, expr := range exprs {
		if expr == nil {
			continue
		}

		for _, traversal := range expr.Variables() {
			references[TraversalKey(traversal)] = struct{}{}
		}

		// Variables() does not report function calls, so walk the syntax tree.
		syntaxExpr, ok := expr.(hclsyntax.Expression)
		if !ok {
			continue
		}
		hclsyntax.VisitAll(syntaxExpr, func(n hclsyntax.Node) hcl.Diagnostics {
			call, ok := n.(*hclsyntax.FunctionCallExpr)
			if !ok {
				return nil
			}
			functions[call.Name] = struct{}{}
			if call.Name == SystemPropertyFunction && len(call.Args) > 0 {
				if name, ok := literalString(call.Args[0]); ok {
					properties[name] = struct{}{}
				}
			}
			return nil
		})
	}

	return Result{
		Functions:        slices.Sorted(maps.Keys(functions)),
		SystemProperties: slices.Sorted(maps.Keys(properties)),
		References:       slices.Sorted(maps.Keys(references)),
	}
}

// literalString returns the value of an argument that is a constant string.
// Dynamic property names cannot be known before run time and are skipped.
func literalString(expr hclsyntax.Expression) (string, bool) {
	if len(expr.Variables()) > 0 {
		return "", false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() || val.Type() != cty.String {
		return "", false
	}
	return val.AsString(), true
}
