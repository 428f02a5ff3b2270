// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		name       string
		text       string
		kind       Kind
		functions  []string
		properties []string
	}{
		{
			name: "plain text folds to a native string",
			text: "hello",
			kind: KindNative,
		},
		{
			name: "reference stays an expression",
			text: "${inputs.host}",
			kind: KindExpression,
		},
		{
			name:       "system property call",
			text:       `${get_sp("io.demo.host")}:8080`,
			kind:       KindExpression,
			functions:  []string{"get_sp"},
			properties: []string{"io.demo.host"},
		},
		{
			name:       "nested calls",
			text:       `${upper(get_sp("b.prop"))}-${get_sp("a.prop")}`,
			kind:       KindExpression,
			functions:  []string{"get_sp", "upper"},
			properties: []string{"a.prop", "b.prop"},
		},
		{
			name:      "dynamic property name is not a dependency",
			text:      `${get_sp(inputs.key)}`,
			kind:      KindExpression,
			functions: []string{"get_sp"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseValue(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.text, v.Text())
			assert.Equal(t, tc.functions, v.FunctionDependencies())
			assert.Equal(t, tc.properties, v.SystemPropertyDependencies())
		})
	}
}

func TestParseValue_Invalid(t *testing.T) {
	_, err := ParseValue("${unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse value")
}

func TestValue_Facets(t *testing.T) {
	var empty Value
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.Text())
	_, ok := empty.Native()
	assert.False(t, ok)
	_, ok = empty.Expression()
	assert.False(t, ok)

	native := NativeValue(cty.NumberIntVal(42))
	assert.Equal(t, KindNative, native.Kind())
	assert.Equal(t, "42", native.Text())
	n, ok := native.Native()
	require.True(t, ok)
	assert.True(t, n.RawEquals(cty.NumberIntVal(42)))
	_, ok = native.Expression()
	assert.False(t, ok)

	expr, err := ParseValue("${a.b}")
	require.NoError(t, err)
	e, ok := expr.Expression()
	require.True(t, ok)
	assert.Len(t, e.Variables(), 1)
	_, ok = expr.Native()
	assert.False(t, ok)

	assert.True(t, NativeValue(cty.NilVal).IsEmpty())
	assert.True(t, ExpressionValue(nil, "x").IsEmpty())
}

func TestValue_Sensitive(t *testing.T) {
	v := NativeValue(cty.StringVal("s3cr3t"))
	assert.Equal(t, "s3cr3t", v.String())

	masked := v.AsSensitive()
	assert.True(t, masked.Sensitive())
	assert.False(t, v.Sensitive())
	assert.Equal(t, sensitiveMask, masked.String())
	assert.Equal(t, "s3cr3t", masked.Text())
}

func TestValue_Equal(t *testing.T) {
	a, err := ParseValue("${x.y}")
	require.NoError(t, err)
	b, err := ParseValue("${x.y}")
	require.NoError(t, err)
	c, err := ParseValue("${x.z}")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(a.AsSensitive()))
	assert.True(t, NativeValue(cty.True).Equal(NativeValue(cty.True)))
	assert.False(t, NativeValue(cty.True).Equal(a))
	assert.True(t, Value{}.Equal(Value{}))
}

func TestLiteralValue_KeepsSourceText(t *testing.T) {
	v := LiteralValue(cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), `["a","b"]`)
	assert.Equal(t, KindNative, v.Kind())
	assert.Equal(t, `["a","b"]`, v.Text())
	assert.Empty(t, v.SystemPropertyDependencies())

	quoted := LiteralValue(cty.StringVal("a"), `"a"`)
	assert.Equal(t, `"a"`, quoted.Text())
	assert.False(t, quoted.Equal(NativeValue(cty.StringVal("a"))))
	assert.True(t, quoted.Equal(LiteralValue(cty.StringVal("a"), `"a"`)))

	assert.True(t, LiteralValue(cty.NilVal, "x").IsEmpty())
	assert.Equal(t, "", LiteralValue(cty.NilVal, "x").Text())
}
