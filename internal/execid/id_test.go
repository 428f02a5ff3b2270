// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package execid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name              string
		raw               string
		expectErr         bool
		expectedNamespace string
		expectedName      string
	}{
		{name: "namespaced id", raw: "io.cloudslang.base.print", expectedNamespace: "io.cloudslang.base", expectedName: "print"},
		{name: "bare name", raw: "print", expectedNamespace: "", expectedName: "print"},
		{name: "dashes and underscores", raw: "ops.base-net.http_get", expectedNamespace: "ops.base-net", expectedName: "http_get"},
		{name: "error - empty string", raw: "", expectErr: true},
		{name: "error - empty segment", raw: "a..b", expectErr: true},
		{name: "error - trailing dot", raw: "a.b.", expectErr: true},
		{name: "error - invalid characters", raw: "a.b[0]", expectErr: true},
		{name: "error - dash only segment", raw: "a.-.b", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedNamespace, id.Namespace())
			assert.Equal(t, tc.expectedName, id.Name())
			assert.Equal(t, tc.raw, id.String())
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "io.demo.flow", Join("io.demo", "flow"))
	assert.Equal(t, "flow", Join("", "flow"))
}

func TestID_Equal(t *testing.T) {
	a, _ := Parse("io.demo.flow")
	b, _ := Parse("io.demo.flow")
	c, _ := Parse("io.demo.other")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*ID)(nil).Equal(nil))
	assert.Equal(t, "", (*ID)(nil).String())
}
