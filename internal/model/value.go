// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/slangc/internal/exprdeps"
	"github.com/zclconf/go-cty/cty"
)

// Kind tells which facet of a Value is populated.
type Kind int

const (
	// KindEmpty is the zero Value: a binding declared without a value.
	KindEmpty Kind = iota
	// KindNative holds a literal cty.Value.
	KindNative
	// KindExpression holds an unevaluated expression and its source text.
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindExpression:
		return "expression"
	default:
		return "empty"
	}
}

const sensitiveMask = "********"

// Value is the expression bound to a binding name. The zero value is empty.
type Value struct {
	kind      Kind
	native    cty.Value
	expr      hcl.Expression
	text      string
	sensitive bool

	functions  []string
	properties []string
}

// NativeValue wraps a literal. Literals have no dependencies.
func NativeValue(v cty.Value) Value {
	if v.Type() == cty.NilType {
		return Value{}
	}
	return Value{kind: KindNative, native: v}
}

// LiteralValue wraps a literal parsed from source. text is the source text
// and is preserved verbatim.
func LiteralValue(v cty.Value, text string) Value {
	val := NativeValue(v)
	if !val.IsEmpty() {
		val.text = text
	}
	return val
}

// ExpressionValue wraps an unevaluated expression. text is the source text
// the expression was parsed from and is preserved verbatim.
func ExpressionValue(expr hcl.Expression, text string) Value {
	if expr == nil {
		return Value{}
	}
	deps := exprdeps.Analyze(expr)
	return Value{
		kind:       KindExpression,
		expr:       expr,
		text:       text,
		functions:  deps.Functions,
		properties: deps.SystemProperties,
	}
}

// ParseValue parses text as an HCL template, e.g. `${get_sp("a.b")}/path`.
// A template without references or function calls is folded into a native
// string value.
func ParseValue(text string) (Value, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(text), "", hcl.InitialPos)
	if diags.HasErrors() {
		return Value{}, fmt.Errorf("parse value %q: %w", text, diags)
	}

	deps := exprdeps.Analyze(expr)
	if len(deps.References) == 0 && len(deps.Functions) == 0 {
		val, diags := expr.Value(nil)
		if !diags.HasErrors() && val.IsWhollyKnown() {
			return LiteralValue(val, text), nil
		}
	}
	return ExpressionValue(expr, text), nil
}

// Kind returns the populated facet.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether no value was bound.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Text returns the source form of the value as written. A literal built
// without source text is rendered as HCL, strings without quotes.
func (v Value) Text() string {
	switch v.kind {
	case KindNative:
		if v.text != "" {
			return v.text
		}
		return nativeText(v.native)
	case KindExpression:
		return v.text
	default:
		return ""
	}
}

// Native returns the literal facet.
func (v Value) Native() (cty.Value, bool) {
	switch v.kind {
	case KindNative:
		return v.native, true
	case KindExpression:
		return cty.NilVal, false
	default:
		return cty.NilVal, false
	}
}

// Expression returns the expression facet.
func (v Value) Expression() (hcl.Expression, bool) {
	switch v.kind {
	case KindNative:
		return nil, false
	case KindExpression:
		return v.expr, true
	default:
		return nil, false
	}
}

// Sensitive reports whether the value must be masked in logs and output.
func (v Value) Sensitive() bool {
	return v.sensitive
}

// AsSensitive returns a copy of v marked sensitive.
func (v Value) AsSensitive() Value {
	v.sensitive = true
	return v
}

// FunctionDependencies returns the sorted names of the functions the value
// calls. Literals call none.
func (v Value) FunctionDependencies() []string {
	switch v.kind {
	case KindNative:
		return nil
	case KindExpression:
		return slices.Clone(v.functions)
	default:
		return nil
	}
}

// SystemPropertyDependencies returns the sorted names of the system
// properties the value reads through get_sp.
func (v Value) SystemPropertyDependencies() []string {
	switch v.kind {
	case KindNative:
		return nil
	case KindExpression:
		return slices.Clone(v.properties)
	default:
		return nil
	}
}

// Equal compares kind, sensitivity and source form. It lets go-cmp compare
// models and plans that carry values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.sensitive != other.sensitive {
		return false
	}
	switch v.kind {
	case KindNative:
		return v.native.RawEquals(other.native) && v.text == other.text
	case KindExpression:
		return v.text == other.text
	default:
		return true
	}
}

// String implements fmt.Stringer and masks sensitive values.
func (v Value) String() string {
	if v.sensitive && !v.IsEmpty() {
		return sensitiveMask
	}
	return v.Text()
}

func nativeText(val cty.Value) string {
	if !val.IsWhollyKnown() {
		return ""
	}
	if !val.IsNull() && val.Type() == cty.String {
		return val.AsString()
	}
	return string(hclwrite.TokensForValue(val).Bytes())
}
